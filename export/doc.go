// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package export renders stored surveys and their statistics as an XLSX
// workbook with a Surveys sheet (one row per survey) and a Summary sheet.
package export
