package barchart

// Stylesheet is embedded in every rendered document.
const Stylesheet = `
.barchart { font-family: sans-serif; }
.axis { font-size: 10px; }
.bar:hover { opacity: 0.8; }
.bar-label { fill: #333; }
.legend text { fill: #333; }
`

// PageStylesheet styles the HTML page containing the chart.
const PageStylesheet = `
body { margin: 0; padding: 1em; font-family: sans-serif; }
#chart { display: inline-block; position: relative; }
`
