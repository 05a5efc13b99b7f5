// SPDX-License-Identifier: MIT

// Package render turns step logs, results and errors into localized text.
//
// Messages live in embedded locales/<tag>.yaml catalogs (English and
// Spanish) and are printed through golang.org/x/text/message. The core
// packages never print; callers pick a Renderer for the user's language.
package render
