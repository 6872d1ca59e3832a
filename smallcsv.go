// # SmallCSV: A Minimal Streaming CSV Row Scanner for Go
//
// SmallCSV reads CSV text one row at a time from a caller-supplied character
// source. It holds one rune of lookahead and one scratch buffer for the column
// being assembled, so arbitrarily large inputs are parsed without loading them
// into memory.
//
// # Dialect
//
// The dialect is fixed: columns are separated by ',', quoted with '"', and a
// doubled quote ("") inside a quoted column is a literal quote. CR, LF and
// CRLF each end a row, and so does the end of the stream. Quoted columns may
// contain commas, quotes, CR and LF.
//
// # Quotes
//
// Read strips the enclosing quotes of quoted columns. ReadRaw keeps them, which
// lets callers tell an empty quoted column ("") from an empty unquoted one.
//
// # Errors
//
// Two structural errors exist, both wrapped in *ParseError: ErrUnterminatedQuote
// and *UnrecognizedCharError. They are fatal; the Reader keeps returning the
// same error afterwards.
//
// # Source lifetime
//
// The Reader never closes its source. Callers open and close the underlying
// stream themselves, typically with defer.
package smallcsv
