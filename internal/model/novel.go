package model

// Novel represents a work's metadata and one page of its table of contents
type Novel struct {
	Title    string
	Ncode    string
	Author   string
	Summary  string
	Episodes []TocEntry
}

// TocEntry is either a chapter-group heading or a link to a single episode
type TocEntry struct {
	IsChapter bool
	Title     string
	Chapter   string // empty for headings
}

// HasEpisodes reports whether the TOC page listed anything at all
func (n *Novel) HasEpisodes() bool {
	return len(n.Episodes) > 0
}
