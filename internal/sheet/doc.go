// Package sheet reads book import workbooks, parses their rows and writes the
// export workbook. Workbooks are handled through excelize; everything above
// this package sees only in-memory tables and parsed rows.
package sheet
