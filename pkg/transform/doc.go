/*
Package transform repeats and transforms text for yap.

	            +-------------+
	            | Transformer |
	            +------+------+
	                   |
	   +---------+-----+----+----------+
	   |         |          |          |
	+--+--+   +--+--+   +---+----+  +--+---+
	| echo |  | caps |  | shuffle |  | funny |
	+------+  +------+  +---------+  +-------+

🎯 Purpose:
- Produces N transformed copies of the input text
- Clamps counts into [1, 200], defaults non-numeric input
- Wraps each copy with prefix/suffix, joins with a separator

🔄 Flow:
1. Clamp/parse the repeat count
2. Transform each copy per the selected mode
3. Wrap with prefix/suffix
4. Join with the separator

📝 Design Philosophy:
The transformer is a pure function over (text, options). Unknown modes fall
back to echo rather than erroring; bad counts are corrected rather than
rejected. Shuffle is deliberately unseeded, callers wanting determinism
inject their own random source via WithRand.
*/
package transform
