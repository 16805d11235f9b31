package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// SheetPart locates one worksheet inside the package.
type SheetPart struct {
	Name string
	Path string
}

// Package lists the parts of an xlsx archive that the engine reads itself.
type Package struct {
	Sheets        []SheetPart
	SharedStrings []string
	StylesPath    string

	zr *zip.Reader
}

// ReadPackage resolves the workbook's sheets in document order and loads
// the shared string table.
func ReadPackage(zr *zip.Reader) (*Package, error) {
	workbookXML, err := readZipFile(zr, "xl/workbook.xml")
	if err != nil {
		return nil, err
	}
	if workbookXML == nil {
		return nil, fmt.Errorf("xl/workbook.xml: %w", ErrPartNotFound)
	}
	sheets, err := parseWorkbookSheets(workbookXML)
	if err != nil {
		return nil, fmt.Errorf("xl/workbook.xml: %w", err)
	}

	relsXML, err := readZipFile(zr, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil, err
	}
	rels, err := parseRelationships(relsXML)
	if err != nil {
		return nil, fmt.Errorf("xl/_rels/workbook.xml.rels: %w", err)
	}

	pkg := &Package{zr: zr}
	for _, s := range sheets {
		rel, ok := rels[s.rID]
		if !ok || !strings.Contains(strings.ToLower(rel.relType), "worksheet") {
			continue
		}
		pkg.Sheets = append(pkg.Sheets, SheetPart{Name: s.name, Path: resolveRelativePath(rel.target, "xl")})
	}

	var sstPath string
	for _, rel := range rels {
		switch {
		case strings.HasSuffix(rel.relType, "/sharedStrings"):
			sstPath = resolveRelativePath(rel.target, "xl")
		case strings.HasSuffix(rel.relType, "/styles"):
			pkg.StylesPath = resolveRelativePath(rel.target, "xl")
		}
	}
	if sstPath != "" {
		data, err := readZipFile(zr, sstPath)
		if err != nil {
			return nil, err
		}
		if pkg.SharedStrings, err = parseSharedStrings(data); err != nil {
			return nil, fmt.Errorf("%s: %w", sstPath, err)
		}
	}
	return pkg, nil
}

// Part returns the raw bytes of a part, or nil when it does not exist.
func (p *Package) Part(name string) ([]byte, error) {
	return readZipFile(p.zr, name)
}

// Sheet returns the part of the named worksheet.
func (p *Package) Sheet(name string) (SheetPart, bool) {
	for _, s := range p.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return SheetPart{}, false
}

type workbookSheet struct {
	name string
	rID  string
}

type relationship struct {
	relType string
	target  string
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	name = strings.TrimPrefix(name, "/")
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// readElementText returns the character data of the element whose start
// tag was just consumed, including nested elements.
func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func parseWorkbookSheets(data []byte) ([]workbookSheet, error) {
	var result []workbookSheet
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attr(se, "name"), attr(se, "id")
			if name != "" && rID != "" {
				result = append(result, workbookSheet{name: name, rID: rID})
			}
		}
	}

	return result, nil
}

func parseRelationships(data []byte) (map[string]relationship, error) {
	result := make(map[string]relationship) // rId -> relationship
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			result[attr(se, "Id")] = relationship{relType: attr(se, "Type"), target: attr(se, "Target")}
		}
	}

	return result, nil
}

// parseSharedStrings returns the text of every <si>, joining rich text runs
// and skipping phonetic hints.
func parseSharedStrings(data []byte) ([]string, error) {
	var (
		result  []string
		current strings.Builder
		inItem  bool
	)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "si":
				inItem = true
				current.Reset()
			case "rPh":
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
			case "t":
				if !inItem {
					continue
				}
				text, err := readElementText(decoder)
				if err != nil {
					return nil, err
				}
				current.WriteString(text)
			}
		case xml.EndElement:
			if t.Name.Local == "si" {
				result = append(result, current.String())
				inItem = false
			}
		}
	}

	return result, nil
}
