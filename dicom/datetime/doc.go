// Package datetime parses the DICOM temporal Value Representations exercised
// by the object accessor layer: Date (DA) and Age String (AS).
//
// # Dates
//
// DICOM dates follow YYYYMMDD with variable precision (YYYY, YYYYMM, or
// YYYYMMDD), plus the legacy NEMA-300 YYYY.MM.DD form. ParseDate tracks which
// components were present via Date.Precision, and Date.DCM/Date.String
// round-trip that precision back to DICOM and human-readable form
// respectively.
//
//	date, err := datetime.ParseDate("202310")  // year-month precision
//	date.Precision                              // PrecisionMonth
//	date.DCM()                                  // "202310"
//
// # Ages
//
// DICOM age strings follow the nnnU format (3 digits plus a D/W/M/Y unit).
// ParseAge parses them into an Age struct; Age.Duration converts to a
// time.Duration using standard medical approximations (a month is 30.4375
// days, a year 365.25 days).
//
//	age, err := datetime.ParseAge("042Y")
//	age.Duration()                              // 42 * 365.25 * 24 * time.Hour
//
// See DICOM Part 5, Section 6.2: https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
package datetime
