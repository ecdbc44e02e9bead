/*
Package wavl implements an ordered map from integer keys to string values,
organized as a weak AVL tree (WAVL tree).

WAVL Trees

WAVL trees are rank-balanced binary search trees. Every node carries an integer
rank; missing children are virtual "external" leaves of rank -1. The balance rule
is purely local: the rank difference between a node and each of its children is
either 1 or 2. Inserting into a WAVL tree behaves exactly like an AVL tree, while
deletion gets away with demotions and at most one (single or double) rotation,
giving amortized constant rebalancing work for any mix of updates.

From the paper by Bernhard Haeupler, Siddhartha Sen and Robert E. Tarjan, 2015:

Rank-Balanced Trees

[…] We introduce the weak AVL tree, abbreviated wavl tree […]. In an insertion-only
sequence a wavl tree is an AVL tree. […] The height of a wavl tree is at most
min{AVL bound, 2 log n}, and the number of rebalancing steps is amortized O(1)
per insertion or deletion.

_________________________________________________________________________

Every node additionally stores the size of its subtree, which makes positional
queries (Select, IndexOf) logarithmic.

Insert and Delete report the number of rebalancing operations they performed
(promotions, demotions and rotations). Rejected operations report -1 together
with an error, so clients may either check the count or use errors.Is.

Trees are not safe for concurrent use. Clients have to serialize all calls to
Insert, Delete and Clear; concurrent readers are fine as long as no mutation is
in flight.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package wavl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wavl'
func tracer() tracing.Trace {
	return tracing.Select("wavl")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
