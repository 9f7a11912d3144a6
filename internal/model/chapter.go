package model

// Chapter represents the body of a single episode
type Chapter struct {
	Ncode      string
	Number     string
	NovelTitle string
	Subtitle   string
	Preface    []string
	Body       []string
	Afterword  []string
}

// ChapterNav holds the neighbouring episode identifiers, empty when absent
type ChapterNav struct {
	Prev string
	Next string
}
