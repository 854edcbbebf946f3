package htmldom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/tooltips/pkg/dom"
)

type observer struct {
	root   *html.Node
	fn     func([]dom.Mutation)
	active bool
}

func (o *observer) Unsubscribe() { o.active = false }

type record struct {
	obs   *observer
	added *html.Node
}

// Observe implements dom.Document. Like a MutationObserver, callbacks are
// not run inside the mutating call; they are queued and delivered by
// [Document.Flush].
func (d *Document) Observe(root dom.Element, fn func([]dom.Mutation)) dom.Subscription {
	o := &observer{root: root.(*Element).node, fn: fn, active: true}
	d.observers = append(d.observers, o)
	return o
}

// recordInsert queues n for every observer whose subtree now contains it.
func (d *Document) recordInsert(n *html.Node) {
	if n.Type != html.ElementNode || !d.connected(n) {
		return
	}
	for _, o := range d.observers {
		if o.active && n != o.root && isDescendant(n, o.root) {
			d.pending = append(d.pending, record{obs: o, added: n})
		}
	}
}

// Pending reports whether mutation records are waiting for Flush.
func (d *Document) Pending() bool {
	return len(d.pending) > 0
}

// Flush delivers queued mutation records, one batch per observer, until
// no callback produces further records.
func (d *Document) Flush() {
	for len(d.pending) > 0 {
		batch := d.pending
		d.pending = nil

		var order []*observer
		added := make(map[*observer][]dom.Element)
		for _, r := range batch {
			if _, seen := added[r.obs]; !seen {
				order = append(order, r.obs)
			}
			added[r.obs] = append(added[r.obs], d.element(r.added))
		}
		for _, o := range order {
			if o.active {
				o.fn([]dom.Mutation{{Added: added[o]}})
			}
		}
	}

	kept := d.observers[:0]
	for _, o := range d.observers {
		if o.active {
			kept = append(kept, o)
		}
	}
	d.observers = kept
}

// InsertHTML parses markup and appends the resulting nodes to parent, the
// way a server-rendered fragment swap would. Element nodes are reported to
// observers.
func (d *Document) InsertHTML(parent dom.Element, markup string) error {
	p := parent.(*Element)
	nodes, err := html.ParseFragment(strings.NewReader(markup), p.node)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		p.node.AppendChild(n)
		d.recordInsert(n)
	}
	return nil
}
