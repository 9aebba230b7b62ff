package docbind

// defaultFontFamily is the standard font stack for generated content and
// PDF footers.
const defaultFontFamily = "sans-serif"

// buildDocumentCSS returns the stylesheet for the compiled document. The
// metadata block renders smaller and gray so it reads as provenance, not
// content; table headers get a distinct background; images scale to the
// content width without distortion.
func buildDocumentCSS() string {
	return `
body {
  font-family: ` + defaultFontFamily + `;
  font-size: 11pt;
  line-height: 1.5;
  color: #1a1a1a;
}

.title-page {
  text-align: center;
  margin-bottom: 2em;
}
.title-page h1 {
  font-size: 24pt;
  margin-bottom: 0.5em;
}

.metadata {
  font-size: 8pt;
  color: #666;
  border-left: 3px solid #ccc;
  padding-left: 0.75em;
  margin-bottom: 1em;
}
.metadata p {
  margin: 0.1em 0;
}

.doc-separator {
  border: none;
  border-top: 1px solid #999;
  margin: 2em 0;
}

.doc-section {
  break-inside: auto;
}

.block-label {
  font-size: 8pt;
  color: #666;
  margin-bottom: 0.2em;
}

table {
  border-collapse: collapse;
  width: 100%;
  margin: 1em 0;
  break-inside: avoid;
  page-break-inside: avoid;
}
th, td {
  border: 1px solid #333;
  padding: 4px 8px;
  font-size: 9pt;
  text-align: left;
}
th {
  background: #808080;
  color: #f5f5f5;
  font-weight: bold;
}

.table-caption {
  font-size: 9pt;
  color: #666;
  text-align: center;
  margin-bottom: 0.3em;
}

figure {
  margin: 1em 0;
  text-align: center;
  break-inside: avoid;
  page-break-inside: avoid;
}
figure img {
  max-width: 100%;
  height: auto;
}
figcaption {
  font-size: 9pt;
  color: #666;
}

.failure {
  border: 1px solid #c0392b;
  background: #fdf0ef;
  color: #c0392b;
  padding: 0.5em 0.75em;
  margin: 1em 0;
  font-size: 10pt;
}
.failure p {
  margin: 0.2em 0;
}
`
}
