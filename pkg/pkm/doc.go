/*
Package pkm exposes decoded creature records of every supported generation
behind the single Pkx interface.

Each generation type (PK6, PK7, PK8, PA8, PK9) owns a private, decrypted copy of
its buffer and reads fields from it on demand through a per-format layout
table. Values derived from several fields, such as shininess, hidden power and
validity, are computed once for all generations.

# Construction

	pk, err := pkm.NewPK7(raw)         // rejects bad lengths, decrypts when needed
	pk := pkm.NewPK7OrDefault(raw)     // falls back to the all-zero record
	pk, err := pkm.Parse(pkm.FormatPK8, raw)

A record that fails its integrity check is still returned by the NewXX
constructors; callers inspect IsValid. Only the OrDefault variants replace
invalid content with the default record.
*/
package pkm
