package engine

// User-facing feedback messages, defined in one place for convenient
// editing and proofreading. The engine emits semantic content only;
// terminal decoration is the session layer's concern.
const (
	msgAdded                = "New person added: %s, Phone: %s, Email: %s"
	msgCleared              = "Address book has been cleared!"
	msgDeleted              = "Deleted Person: %s"
	msgPersonsFound         = "%d persons found!"
	msgInvalidCommand       = "Invalid command format: %s\n%s"
	msgInvalidDisplayedIdx  = "The person index provided is invalid"
	msgPersonNotInBook      = "Person could not be found in address book"
	msgCommandHelp          = "%s: %s"
	msgCommandHelpParams    = "\tParameters: %s"
	msgCommandHelpExample   = "\tExample: %s"
	displayIndexedListEntry = "\t%d. %s"
)

// Command words recognized by the dispatch loop.
const (
	wordAdd    = "add"
	wordFind   = "find"
	wordList   = "list"
	wordDelete = "delete"
	wordClear  = "clear"
	wordHelp   = "help"
	wordExit   = "exit"
)

// Per-command usage text.
const (
	descAdd   = "Adds a person to the address book."
	paramsAdd = "NAME p/PHONE_NUMBER e/EMAIL"
	exAdd     = "add John Doe p/98765432 e/johnd@gmail.com"

	descFind   = "Finds all persons whose names contain any of the specified keywords (case-insensitive) and displays them as a list with index numbers."
	paramsFind = "KEYWORD [MORE_KEYWORDS]"
	exFind     = "find alice bob charlie"

	descList = "Displays all persons as a list with index numbers."
	exList   = "list"

	descDelete   = "Deletes a person identified by the index number used in the last find/list call."
	paramsDelete = "INDEX"
	exDelete     = "delete 1"

	descClear = "Clears address book permanently."
	exClear   = "clear"

	descHelp = "Shows program usage instructions."
	exHelp   = "help"

	descExit = "Exits the program."
	exExit   = "exit"
)
