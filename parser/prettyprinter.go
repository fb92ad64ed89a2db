/*
 * Stone
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import "bytes"

/*
Print renders a Node as the stable S-expression form used for debugging
and snapshot tests: `( child1 child2 … )`, with leaves rendered as their
token text. Re-printing the result of parsing it again yields the same
text, since the grammar carries no information the printer discards.
*/
func Print(n *Node) string {
	var buf bytes.Buffer
	writeNode(&buf, n)
	return buf.String()
}

func writeNode(buf *bytes.Buffer, n *Node) {
	if n.IsLeaf() {
		buf.WriteString(n.Token.Text)
		return
	}

	buf.WriteString("(")
	for i, c := range n.Children {
		if i > 0 {
			buf.WriteString(" ")
		}
		writeNode(buf, c)
	}
	buf.WriteString(")")
}
