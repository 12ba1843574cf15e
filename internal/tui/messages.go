package tui

import (
	"github.com/matheuskafuri/newsforge/internal/headline"
	"github.com/matheuskafuri/newsforge/internal/history"
)

type generatedMsg struct {
	record history.Record
	counts map[headline.Category]int
}

type historyLoadedMsg struct {
	filter  headline.Category
	records []history.Record
}

type errMsg struct {
	err error
}
