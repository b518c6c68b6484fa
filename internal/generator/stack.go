package generator

import "golang.org/x/exp/slices"

// tagStack holds the open tags, the last one is the innermost.
type tagStack []string

func (s *tagStack) push(tag string) {
	*s = append(*s, tag)
}

func (s *tagStack) pop() string {
	tag := (*s)[len(*s)-1]
	*s = slices.Delete(*s, len(*s)-1, len(*s))
	return tag
}

func (s tagStack) len() int {
	return len(s)
}
