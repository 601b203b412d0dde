package document

import "errors"

var (
	ErrDirNotFound   = errors.New("the provided directory does not exist")
	ErrNotADirectory = errors.New("the provided path points to a file, not a directory")
	ErrPathEscapes   = errors.New("path escapes the base directory")
	ErrFileNotFound  = errors.New("PDF file not found")
)
