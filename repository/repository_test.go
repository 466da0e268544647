package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/repository"
)

func TestAddReportsNewness(t *testing.T) {
	s := repository.New(canon.Breadth1)
	cw := canon.CodeWord{Root: 1, Quads: []canon.Quad{{Src: 0, Dst: 1, EdgeType: 10, DstType: 2}}}

	assert.True(t, s.Add(cw))
	assert.False(t, s.Add(cw))
	assert.True(t, s.Seen(cw))
	assert.Equal(t, 1, s.Len())
}

func TestKeyDistinguishesDifferentCodeWords(t *testing.T) {
	a := canon.CodeWord{Root: 1, Quads: []canon.Quad{{Src: 0, Dst: 1, EdgeType: 10, DstType: 2}}}
	b := canon.CodeWord{Root: 1, Quads: []canon.Quad{{Src: 0, Dst: 1, EdgeType: 11, DstType: 2}}}
	assert.NotEqual(t, repository.Key(a), repository.Key(b))
}
