// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the leaf elements of an element tree:
// solid fills, rules, images, text labels and buttons. Leaves keep
// persistent state such as uploaded textures between frames.
package widget
