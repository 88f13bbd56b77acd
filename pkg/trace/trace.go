// Package trace records notifications as they are delivered so that a run can
// be printed and compared with another one.
package trace

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/subjects/notify"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// Delivery is one callback invocation.
type Delivery struct {
	Subscriber string
	Subject    string
	Value      string
}

// Recorder keeps deliveries in the order they happened.
type Recorder struct {
	deliveries []Delivery
}

// Record appends a delivery.
func (r *Recorder) Record(subscriber, subject string, value any) {
	r.deliveries = append(r.deliveries, Delivery{
		Subscriber: subscriber,
		Subject:    subject,
		Value:      fmt.Sprint(value),
	})
}

// Deliveries returns a copy of everything recorded so far.
func (r *Recorder) Deliveries() []Delivery {
	return slices.Clone(r.deliveries)
}

// Len returns the number of deliveries.
func (r *Recorder) Len() int {
	return len(r.deliveries)
}

// Reset forgets all deliveries.
func (r *Recorder) Reset() {
	r.deliveries = nil
}

// Digest hashes the deliveries in order. Two runs with the same digest
// delivered the same values to the same subscribers in the same order.
func (r *Recorder) Digest() uint64 {
	return Digest(r.deliveries)
}

// Digest hashes deliveries in order.
func Digest(deliveries []Delivery) uint64 {
	d := xxhash.New()
	for _, dl := range deliveries {
		d.WriteString(dl.Subscriber)
		d.WriteString("\x00")
		d.WriteString(dl.Subject)
		d.WriteString("\x00")
		d.WriteString(dl.Value)
		d.WriteString("\n")
	}
	return d.Sum64()
}

// Render writes the deliveries as a table.
func (r *Recorder) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "subscriber", "subject", "value"})
	for i, dl := range r.deliveries {
		table.Append([]string{
			strconv.Itoa(i + 1),
			dl.Subscriber,
			dl.Subject,
			dl.Value,
		})
	}
	table.SetFooter([]string{
		"",
		humanize.Comma(int64(len(r.deliveries))) + " deliveries",
		"digest",
		fmt.Sprintf("%016x", r.Digest()),
	})
	table.Render()
}

// Callback returns a callback recording every value it is run with.
func Callback[T any](r *Recorder, subscriber, subject string) notify.Callback[T] {
	return notify.ListenerFunc[T](func(value T) {
		r.Record(subscriber, subject, value)
	})
}
