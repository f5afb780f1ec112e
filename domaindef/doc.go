// Package domaindef scans a Forward/Backward pair's special-state
// posteriors for contiguous query regions that plausibly contain a
// single domain hit: a run of rows whose match occupancy m_occ exceeds
// rt1, widened while it stays above the looser rt2, and corroborated by
// the cumulative B/E occupancy actually crossing zero somewhere inside
// the run (otherwise the m_occ bump is noise, not a real domain entry
// and exit).
//
// Subdividing a single envelope into multiple domains — the case where
// two real hits sit close enough together that their m_occ bumps merge
// — is out of scope here; see DESIGN.md.
package domaindef
