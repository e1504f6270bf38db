/*
Copyright © 2019 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package csdm

// IndexArray returns the indices of the count points along a linear dimension.
// When fftOutputOrder is false, the indices are 0, 1, ..., count-1.
// Otherwise they follow the output order of a discrete Fourier transform:
// zero first, then the positive indices, then the negative indices in
// increasing order. For even counts the sequence is
// 0, 1, ..., count/2-1, -count/2, ..., -1; for odd counts it is
// 0, 1, ..., (count-1)/2, -(count-1)/2, ..., -1.
func IndexArray(count int, fftOutputOrder bool) []int {
	if count < 0 {
		count = 0
	}
	o := make([]int, count)
	half := (count + 1) / 2
	for i := range o {
		if fftOutputOrder && i >= half {
			o[i] = i - count
		} else {
			o[i] = i
		}
	}
	return o
}

// centeredIndexArray returns the indices of a complex FFT whose
// zero frequency is in the middle: -count/2, ..., count-count/2-1.
func centeredIndexArray(count int) []int {
	o := IndexArray(count, false)
	for i := range o {
		o[i] -= count / 2
	}
	return o
}
