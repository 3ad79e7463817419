// This file is part of nanosim.
//
// nanosim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nanosim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nanosim.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// particular pattern. Patterns that callers are expected to check for should
// be stored as exported constants in the package that creates the error. For
// example, the storage package:
//
//	const BindError = "storage: drive %d: %v"
//
//	if curated.Is(err, storage.BindError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(storage.BindError, 2, err)
//	f := curated.Errorf("session: %v", e)
//
//	curated.Has(f, storage.BindError) // true
//	curated.Is(f, storage.BindError)  // false
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts, so wrapping an error with the same prefix twice
// does not result in "session: session: ...". Parts of a chain are separated
// by the sub-string ": ".
package curated
