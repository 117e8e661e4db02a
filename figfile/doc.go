// Package figfile reads figure documents: declarative JSON or YAML
// descriptions of a figure that build into a *pltrs.Figure.
//
// A minimal document:
//
//	width: 800
//	height: 600
//	axes:
//	  - xlim: [0, 10]
//	    ylim: [-1, 1]
//	    nodes:
//	      - kind: line
//	        x: [0, 5, 10]
//	        y: [0, 1, 0]
//
// Omitted limits are derived from the data, omitted colors cycle through the
// theme palette and an axes without a rect fills the default margins (or its
// grid cell when the document sets a grid).
package figfile
