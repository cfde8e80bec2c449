// Package report presents the results of a bstdemo run on the console.
package report

import (
	"fmt"
	"io"

	bst "github.com/Noxtal/my-binary-search-tree"
	"github.com/pterm/pterm"
)

// Summary holds the read-only query results for a populated tree.
type Summary struct {
	Values   []float64
	Nodes    int
	Height   int
	Balanced bool
	Probe    float64
	Found    bool
}

// Build runs every query against tree. The only error is a height that does
// not fit an int32.
func Build(tree *bst.Node[float64], probe float64) (Summary, error) {
	s := Summary{
		Values: tree.InOrder(nil),
		Nodes:  tree.Len(),
		Probe:  probe,
		Found:  tree.Has(probe),
	}
	var err error
	if s.Height, err = tree.Height(); err != nil {
		return Summary{}, fmt.Errorf("height: %w", err)
	}
	if s.Balanced, err = tree.IsBalanced(); err != nil {
		return Summary{}, fmt.Errorf("balance: %w", err)
	}
	return s, nil
}

// Render writes s to w as a section header followed by a bullet list.
func Render(w io.Writer, s Summary) error {
	list, err := pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "nodes    : " + fmt.Sprint(s.Nodes)},
		{Level: 0, Text: "in-order : " + fmt.Sprint(s.Values)},
		{Level: 0, Text: "height   : " + fmt.Sprint(s.Height)},
		{Level: 0, Text: "balanced : " + fmt.Sprint(s.Balanced)},
		{Level: 0, Text: fmt.Sprintf("has(%v) : %v", s.Probe, s.Found)},
	}).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, pterm.DefaultSection.Sprint("Summary"), list)
	return err
}
