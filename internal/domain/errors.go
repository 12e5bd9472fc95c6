package domain

import "errors"

// Domain errors
var (
	ErrEmptyDocument       = errors.New("empty document")
	ErrDocumentXMLNotFound = errors.New("word/document.xml not found")
)
