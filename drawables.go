package gekko

import (
	"github.com/google/uuid"
)

type DrawableId string

// Drawable is anything the renderer draws once per frame.
type Drawable interface {
	Render()
	Delete()
}

// DrawList holds the drawables in the order they were added.
type DrawList struct {
	order []DrawableId
	items map[DrawableId]Drawable
}

func NewDrawList() *DrawList {
	return &DrawList{items: make(map[DrawableId]Drawable)}
}

// Add takes ownership of d.
func (l *DrawList) Add(d Drawable) DrawableId {
	id := DrawableId(uuid.NewString())
	l.order = append(l.order, id)
	l.items[id] = d
	return id
}

// Remove deletes the drawable and forgets it. Unknown ids are ignored.
func (l *DrawList) Remove(id DrawableId) {
	d, ok := l.items[id]
	if !ok {
		return
	}
	d.Delete()
	delete(l.items, id)
	for i, o := range l.order {
		if o == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *DrawList) Len() int { return len(l.order) }

func (l *DrawList) RenderAll() {
	for _, id := range l.order {
		l.items[id].Render()
	}
}

// DeleteAll deletes every drawable, newest first.
func (l *DrawList) DeleteAll() {
	for i := len(l.order) - 1; i >= 0; i-- {
		l.items[l.order[i]].Delete()
	}
	l.order = nil
	l.items = make(map[DrawableId]Drawable)
}
