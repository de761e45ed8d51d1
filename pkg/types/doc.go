// Package types defines the closed categorical values decoded from records.
//
// Every type is a thin wrapper over the raw numeric code with a total
// conversion: codes outside the known range become the type's None value
// instead of failing.
package types
