package models

import "io"

type Upload struct {
	Filename string
	Content  io.Reader
}
