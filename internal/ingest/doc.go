// Package ingest processes uploaded study documents: it extracts plain text,
// splits it into topics using heading detection, optionally enhances the
// topic summaries with the model, and feeds the full text into the owner's
// retrieval collection.
package ingest
