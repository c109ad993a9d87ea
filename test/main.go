package main

import (
	"fmt"

	"k8s.io/apimachinery/pkg/labels"

	"github.com/akki2825/aeneas/pkg/timing"
	"github.com/akki2825/aeneas/pkg/transcript"
)

var values = []struct {
	interval string
	lines    []string
	labels   map[string]string
}{
	{interval: "0.000-1.480", lines: []string{"From fairest creatures we desire increase"}, labels: map[string]string{"speaker": "a"}},
	{interval: "1.480-2.720", lines: []string{"That thereby beauty's rose might never die"}, labels: map[string]string{"speaker": "a"}},
	{interval: "2.720-2.720", lines: []string{""}, labels: map[string]string{"speaker": "b"}},
	{interval: "2.720-5.000", lines: []string{"But as the riper should by time decease"}, labels: map[string]string{"speaker": "b"}},
}

func main() {
	begin := timing.MustFromString("0.000")
	end := timing.MustFromString("10.000")

	m, err := transcript.New(&begin, &end)
	if err != nil {
		panic(err)
	}

	for _, v := range values {
		id, err := m.Add(timing.MustParseInterval(v.interval), transcript.Fragment{
			Lines:  v.lines,
			Labels: v.labels,
		})
		if err != nil {
			panic(err)
		}
		fmt.Println("added", id, v.interval)
	}

	fixed := m.FixZeroLengthIntervals(timing.MustFromString("0.001"))
	fmt.Println("repaired zero-length fragments:", fixed)

	selector, err := labels.Parse("speaker=b")
	if err != nil {
		panic(err)
	}
	for _, f := range m.GetByLabel(selector) {
		fmt.Println("speaker b:", f.Interval, f.Payload.Lines)
	}

	iter := m.List().Fragments()
	for iter.Next() {
		fmt.Println("fragment", iter.Index(), iter.Value().Interval, "adjacent:", iter.IsAdjacent())
	}
}
