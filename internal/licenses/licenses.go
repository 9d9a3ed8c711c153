// Package licenses exposes the license text shipped with the binary.
package licenses

import _ "embed"

//go:embed embedded/LICENSE
var licenseText string

func Text() string {
	return licenseText
}
