// Package delivery provides the journal model for completed hand-overs.
// A Record is an append-only fact: it is written when a pizza changes hands
// and read only by reporting queries, never by the dispatch logic itself.
package delivery
