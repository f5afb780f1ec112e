// Package score converts a bounded Forward nat-score into the bit score,
// P-value and E-value a results report needs: the bit score corrects for
// the null (background) model's own log-odds, and the P-value/E-value
// come from the profile's fitted Forward-score tail distribution scaled
// by the number of sequences or positions searched.
package score
