// Package docproc reads, transforms and searches PDF and Word documents.
//
// All work is delegated to established document libraries; docproc adds
// argument checking, error classification and atomic output files. Create an
// [Engine] once and call its methods with file paths:
//
//	eng := docproc.New(docproc.WithLogger(logrus.StandardLogger()))
//
//	pages, err := eng.ExtractText("report.pdf")     // []string, one per page
//	tables, err := eng.ExtractTables("report.pdf")  // []Table
//	n, err := eng.Merge([]string{"a.pdf", "b.pdf"}, "merged.pdf")
//	parts, err := eng.Split("merged.pdf", "parts", 1)
//	_, err = eng.Rotate("a.pdf", "rotated.pdf", 90, 1)
//	_, err = eng.Encrypt("a.pdf", "locked.pdf", "secret", "")
//	_, err = eng.Decrypt("locked.pdf", "plain.pdf", "secret")
//	info, err := eng.Metadata("a.pdf")
//	hits, err := eng.Search("a.pdf", `\d+%`, false)
//	text, err := eng.DocxText("notes.docx")
//
// # Errors
//
// Every failure is an [*Error] whose [Kind] says what went wrong. Test it
// with [errors.Is] against [ErrNotFound], [ErrFormat], [ErrPermission],
// [ErrWrite] or [ErrInvalid]:
//
//	if _, err := eng.Decrypt(in, out, pw); errors.Is(err, docproc.ErrPermission) {
//	    // wrong password
//	}
//
// A password-protected PDF passed to any operation other than Decrypt is a
// format error that also matches [ErrEncrypted].
//
// # Output files
//
// Every file an operation writes is staged beside its destination and
// renamed into place only once complete. A failed operation leaves no
// partial file behind and does not disturb an existing one.
package docproc
