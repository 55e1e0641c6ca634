package app

import "fmt"

// ============================================================
// Embedded Terminal (code element editing)
// ============================================================

// TerminalWrite sends input from xterm.js to the PTY.
func (a *App) TerminalWrite(data string) error {
	return a.term.Write(data)
}

// TerminalResize resizes the PTY.
func (a *App) TerminalResize(cols, rows int) error {
	return a.term.Resize(uint16(cols), uint16(rows))
}

// OpenElementInEditor opens a code element's linked file in the embedded
// terminal. Saves refresh the element through the file watcher.
func (a *App) OpenElementInEditor(elementID string) error {
	ds, ok := a.decks.DeckState()
	if !ok {
		return fmt.Errorf("no presentation open")
	}
	el, _ := ds.Presentation.FindElement(elementID)
	if el == nil {
		return fmt.Errorf("element not found: %s", elementID)
	}
	if el.Code == nil || el.Code.FilePath == "" {
		return fmt.Errorf("element %s has no linked file", elementID)
	}

	a.editingElementID = elementID
	if a.codeLinks != nil {
		a.codeLinks.LinkElement(a.ctx, elementID, el.Code.FilePath)
	}
	return a.term.OpenFile(el.Code.FilePath)
}

// CloseEditor closes the embedded terminal session.
func (a *App) CloseEditor() {
	a.term.Close()
	a.editingElementID = ""
}

// LinkElementToFile attaches a code element to a source file without
// opening the terminal.
func (a *App) LinkElementToFile(elementID, filePath string) error {
	if a.codeLinks == nil {
		return fmt.Errorf("file watcher unavailable")
	}
	return a.codeLinks.LinkElement(a.ctx, elementID, filePath)
}

// UnlinkElementFile stops following the element's source file.
func (a *App) UnlinkElementFile(elementID string) {
	if a.codeLinks != nil {
		a.codeLinks.UnlinkElement(a.ctx, elementID)
	}
}
