package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Record - Model of a single roster entry
type Record struct {
	Name   string
	RollNo int

	out io.Writer
}

// NewRecord creates a record with default field values and announces it
// on the record's output stream
func NewRecord(out io.Writer) *Record {
	fmt.Fprintln(out, "Default Constructor Called")
	log.Debug("Created default record")
	return &Record{out: out}
}

// NewRecordWithValues creates a record carrying the given name and roll
// number. Values are stored verbatim, nothing is announced.
func NewRecordWithValues(out io.Writer, name string, rollNo int) *Record {
	log.Debugf("Created record %q/%d", name, rollNo)
	return &Record{
		Name:   name,
		RollNo: rollNo,
		out:    out,
	}
}

// Render writes the record as a single labelled line
func (r *Record) Render() {
	fmt.Fprintf(r.out, "Name: %s\tRollNo: %d\n", r.Name, r.RollNo)
}

// Close announces the end of the record's lifetime. It never fails; the
// error return is there so Record is an io.Closer.
func (r *Record) Close() error {
	fmt.Fprintln(r.out, "Destructor Called")
	return nil
}
