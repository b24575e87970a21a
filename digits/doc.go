// Package digits fits the decimal digits found in a string into a format
// of '#' placeholders, e.g. "1s23se4567yj-8?90" with "(###) ###-####" gives
// "(123) 456-7890".
//
// Failure happens when the input holds no digit at all, or holds fewer
// digits than the format has placeholders while WithIncompleteFormat(false)
// is set. What is returned then is chosen by WithFailedOutput.
//
// Options:
//
//   - WithFailedOutput(mode)        Empty (default), Original or Digits.
//   - WithIncompleteFormat(on)      fill as many placeholders as possible (default true).
//   - WithLastDigitEnds(on)         stop right after the last digit (default true);
//     when false, literals keep being copied up to the next unfilled placeholder.
//   - WithExpand(on)                append surplus digits after the format (default false).
//   - WithTrim(mode)                strip leading and/or trailing zeros before formatting;
//     an all-zero input keeps a single "0".
//
// Only ASCII digits 0-9 are extracted.
package digits
