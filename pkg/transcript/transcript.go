package transcript

import (
	"fmt"

	"github.com/google/uuid"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/akki2825/aeneas/pkg/syncmap"
	"github.com/akki2825/aeneas/pkg/timing"
)

// Fragment is one aligned unit of a transcript: the text lines spoken
// during its interval plus free-form labels (speaker, language, kind).
type Fragment struct {
	ID     string
	Lines  []string
	Labels labels.Set
}

// Map is a transcript sync map: a bounded fragment list carrying
// transcript payloads, addressable by fragment id and by label selector.
type Map struct {
	list *syncmap.FragmentList[Fragment]
}

func New(begin, end *timing.TimeValue) (*Map, error) {
	list, err := syncmap.New[Fragment](begin, end)
	if err != nil {
		return nil, err
	}
	return &Map{list: list}, nil
}

// Add inserts the fragment keeping the map sorted and returns its id. A
// fragment without an id gets a generated one.
func (r *Map) Add(interval timing.TimeInterval, f Fragment) (string, error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	} else if r.Has(f.ID) {
		return "", fmt.Errorf("fragment %s already exists", f.ID)
	}
	if err := r.list.Add(syncmap.NewFragment(interval, f), true); err != nil {
		return "", err
	}
	return f.ID, nil
}

// Append adds the fragment at the end without keeping the map sorted;
// callers must Sort before relying on neighbor operations.
func (r *Map) Append(interval timing.TimeInterval, f Fragment) (string, error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	} else if r.Has(f.ID) {
		return "", fmt.Errorf("fragment %s already exists", f.ID)
	}
	if err := r.list.Add(syncmap.NewFragment(interval, f), false); err != nil {
		return "", err
	}
	return f.ID, nil
}

func (r *Map) Sort() error {
	return r.list.Sort()
}

func (r *Map) Count() int {
	return r.list.Len()
}

func (r *Map) Has(id string) bool {
	iter := r.list.Fragments()
	for iter.Next() {
		if iter.Value().Payload.ID == id {
			return true
		}
	}
	return false
}

func (r *Map) Get(id string) (syncmap.Fragment[Fragment], error) {
	iter := r.list.Fragments()
	for iter.Next() {
		if iter.Value().Payload.ID == id {
			return iter.Value(), nil
		}
	}
	return syncmap.Fragment[Fragment]{}, fmt.Errorf("no match found for: %s", id)
}

func (r *Map) GetAll() syncmap.Fragments[Fragment] {
	return r.list.All()
}

func (r *Map) GetByLabel(selector labels.Selector) syncmap.Fragments[Fragment] {
	entries := syncmap.Fragments[Fragment]{}

	iter := r.list.Fragments()

	for iter.Next() {
		if selector.Matches(iter.Value().Payload.Labels) {
			entries = append(entries, iter.Value())
		}
	}
	return entries
}

func (r *Map) Offset(delta timing.TimeValue) {
	r.list.Offset(delta)
}

func (r *Map) MoveEnd(index int, value timing.TimeValue) bool {
	return r.list.MoveEnd(index, value)
}

func (r *Map) FixZeroLengthIntervals(offset timing.TimeValue) int {
	return r.list.FixZeroLengthIntervals(offset, 0, 0)
}

// List exposes the underlying fragment list.
func (r *Map) List() *syncmap.FragmentList[Fragment] {
	return r.list
}
