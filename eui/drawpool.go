package eui

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// optionPool recycles draw option structs across frames. get always returns
// a zeroed value, which ebiten treats as identity transforms.
type optionPool[T any] struct {
	p sync.Pool
}

func (o *optionPool[T]) get() *T {
	v, _ := o.p.Get().(*T)
	if v == nil {
		return new(T)
	}
	var zero T
	*v = zero
	return v
}

func (o *optionPool[T]) put(v *T) {
	o.p.Put(v)
}

var (
	imageOps optionPool[ebiten.DrawImageOptions]
	textOps  optionPool[text.DrawOptions]
)
