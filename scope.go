package main

import (
	log "github.com/sirupsen/logrus"
)

// Scope owns a set of records and releases them in reverse order of
// tracking, the way stack variables unwind at the end of a block.
type Scope struct {
	records []*Record
}

// NewScope creates an empty scope
func NewScope() *Scope {
	return &Scope{}
}

// Track registers a record for teardown and hands it back
func (s *Scope) Track(r *Record) *Record {
	s.records = append(s.records, r)
	return r
}

// Close releases every tracked record back-to-front. A second Close
// finds nothing left and does nothing.
func (s *Scope) Close() error {
	log.Debugf("Closing %d tracked records", len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		_ = s.records[i].Close()
	}
	s.records = nil
	return nil
}
