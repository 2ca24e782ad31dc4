package main

type mode int

const (
	modeView mode = iota
	modeCommand
	modeDateWindow
)

type uiState struct {
	mode                    mode
	command                 CommandInput
	showCharts              bool
	dateWindow              dateWindowUI
	noticeMsg               string
	noticeType              noticeKind
	noticeSeq               int
	searchQuery             string
	visibleStart            int
	visibleEnd              int
	debugCursorHeight       int
	debugHeightFree         int
	debugDesiredAboveHeight int
}
