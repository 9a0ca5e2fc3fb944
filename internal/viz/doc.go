// Package viz formats terminal output for the fireanim CLI.
//
// Styles are built with lipgloss and degrade to plain text when the output
// is not a terminal:
//
//   - [Reporter]: status lines, metrics and progress bars
//   - [Swatch]: a one-line legend for a colormap
package viz
