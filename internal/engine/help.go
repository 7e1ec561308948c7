package engine

import (
	"fmt"
	"strings"
)

// usage describes one command for the help listing.
type usage struct {
	word    string
	desc    string
	params  string
	example string
}

var usages = []usage{
	{word: wordAdd, desc: descAdd, params: paramsAdd, example: exAdd},
	{word: wordFind, desc: descFind, params: paramsFind, example: exFind},
	{word: wordList, desc: descList, example: exList},
	{word: wordDelete, desc: descDelete, params: paramsDelete, example: exDelete},
	{word: wordClear, desc: descClear, example: exClear},
	{word: wordExit, desc: descExit, example: exExit},
	{word: wordHelp, desc: descHelp, example: exHelp},
}

// usageFor returns the usage block for a single command word.
func usageFor(word string) string {
	for _, u := range usages {
		if u.word == word {
			return u.render()
		}
	}
	return ""
}

// usageAll returns the usage blocks for every command.
func usageAll() string {
	blocks := make([]string, len(usages))
	for i, u := range usages {
		blocks[i] = u.render()
	}
	return strings.Join(blocks, "\n")
}

func (u usage) render() string {
	lines := []string{fmt.Sprintf(msgCommandHelp, u.word, u.desc)}
	if u.params != "" {
		lines = append(lines, fmt.Sprintf(msgCommandHelpParams, u.params))
	}
	lines = append(lines, fmt.Sprintf(msgCommandHelpExample, u.example))
	return strings.Join(lines, "\n")
}
