// Package editor implements single-line string editing, as used by the search
// prompt.
package editor

import (
	"strconv"
)

// A StringEditor is a control and inspect interface for editing a string.
type StringEditor interface {
	StringEditorView
	StringEditorControl
	Commit()
	Cancel()
}

// StringEditorView allows inspection of a string editor.
type StringEditorView interface {

	// GetCursorPos returns the current cursor position in the string, 0 being
	// the first character.
	GetCursorPos() int

	// GetContent returns the current (edited) contents.
	GetContent() string

	GetName() string
}

// StringEditorControl allows manipulation of a string editor.
type StringEditorControl interface {
	DeleteRune()
	BackspaceRune()
	BackspaceToBeginning()
	DeleteToEnd()
	Clear()
	MoveCursorToBeginning()
	MoveCursorPastEnd()
	MoveCursorLeft()
	MoveCursorRightA()
	MoveCursorPrevWordBeginning()
	AddRune(newRune rune)
}

type stringEditor struct {
	Name string

	Content   string
	CursorPos int

	CommitFn func(string)
	CancelFn func()
}

// NewStringEditor returns an editor for the given initial content, with the
// cursor placed past its end.
// commit is called with the content on Commit, cancel (if non-nil) on Cancel.
func NewStringEditor(name, content string, commit func(string), cancel func()) StringEditor {
	return &stringEditor{
		Name:      name,
		Content:   content,
		CursorPos: len([]rune(content)),
		CommitFn:  commit,
		CancelFn:  cancel,
	}
}

func (e stringEditor) GetName() string    { return e.Name }
func (e stringEditor) GetContent() string { return e.Content }
func (e stringEditor) GetCursorPos() int  { return e.CursorPos }

func (e *stringEditor) DeleteRune() {
	tmpStr := []rune(e.Content)
	if e.CursorPos < len(tmpStr) {
		preCursor := tmpStr[:e.CursorPos]
		postCursor := tmpStr[e.CursorPos+1:]

		e.Content = string(append(preCursor, postCursor...))
	}
}

func (e *stringEditor) BackspaceRune() {
	if e.CursorPos > 0 {
		tmpStr := []rune(e.Content)
		preCursor := tmpStr[:e.CursorPos-1]
		postCursor := tmpStr[e.CursorPos:]

		e.Content = string(append(preCursor, postCursor...))
		e.CursorPos--
	}
}

func (e *stringEditor) BackspaceToBeginning() {
	afterCursor := []rune(e.Content)[e.CursorPos:]
	e.Content = string(afterCursor)
	e.CursorPos = 0
}

func (e *stringEditor) DeleteToEnd() {
	beforeCursor := []rune(e.Content)[:e.CursorPos]
	e.Content = string(beforeCursor)
}

func (e *stringEditor) Clear() {
	e.Content = ""
	e.CursorPos = 0
}

func (e *stringEditor) MoveCursorToBeginning() {
	e.CursorPos = 0
}

func (e *stringEditor) MoveCursorPastEnd() {
	e.CursorPos = len([]rune(e.Content))
}

func (e *stringEditor) MoveCursorLeft() {
	if e.CursorPos > 0 {
		e.CursorPos--
	}
}

func (e *stringEditor) MoveCursorRightA() {
	if e.CursorPos < len([]rune(e.Content)) {
		e.CursorPos++
	}
}

func (e *stringEditor) MoveCursorPrevWordBeginning() {
	beforeCursor := []rune(e.Content)[:e.CursorPos]
	if len(beforeCursor) == 0 {
		return
	}
	i := len(beforeCursor) - 1
	for i > 0 && beforeCursor[i-1] == ' ' {
		i--
	}
	for i > 0 && beforeCursor[i-1] != ' ' {
		i--
	}
	e.CursorPos = i
}

func (e *stringEditor) AddRune(newRune rune) {
	if strconv.IsPrint(newRune) {
		tmp := []rune(e.Content)
		cursorPos := e.CursorPos
		if len(tmp) == cursorPos {
			tmp = append(tmp, newRune)
		} else {
			tmp = append(tmp[:cursorPos+1], tmp[cursorPos:]...)
			tmp[cursorPos] = newRune
		}
		e.Content = string(tmp)
		e.CursorPos++
	}
}

func (e *stringEditor) Commit() {
	e.CommitFn(e.Content)
}

func (e *stringEditor) Cancel() {
	if e.CancelFn != nil {
		e.CancelFn()
	}
}
