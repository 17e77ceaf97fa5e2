package jsonsieve

// Package jsonsieve extracts sub-documents from a JSON stream as the bytes
// arrive.
//
// The package is organized into several sub-packages:
//
// - lexer: incremental JSON lexer emitting structural events
// - path: paths of values within a document
// - matcher: path matchers (patterns, depth ranges, combinators)
// - handler: consumers for matched values (buffer, writer, analyser, indexer)
//
// The root package ties them together in the Extractor: feed it chunks of
// any size, and each value whose path matches one of its matchers comes out
// with its raw input bytes as soon as its closing byte arrives.  The output
// never depends on how the input was split into chunks.
//
// Only the bytes of currently open matches are retained, so extracting
// small parts of an arbitrarily large input runs in memory proportional to
// the matches, not the input:
//
//	ex := jsonsieve.NewExtractor()
//	ex.AddMatcher(matcher.Must(matcher.ParseSimple(`{"users"}[]{"name"}`)))
//	for chunk := range chunks {
//	    if err := ex.Feed(chunk); err != nil { ... }
//	    for m, ok := ex.Pop(); ok; m, ok = ex.Pop() {
//	        fmt.Printf("%s: %s\n", m.Path, m.Bytes)
//	    }
//	}
//	if err := ex.Close(); err != nil { ... }
//
// For whole-in-memory input the Extract helper does the same in one call.
//
// The CLI utility is in the directory cmd/jsieve. You can install it with:
//
//	go install github.com/jsonsieve/jsonsieve/cmd/jsieve
