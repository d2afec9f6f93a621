// Package mindmap is the editing core of the mind map: an ordered store of
// text nodes with a permanent root, the interaction controller that turns
// pointer and key commands into state transitions, and the line-oriented text
// codec used for import and export.
//
// Nothing here draws or reads input directly. A UI binding owns a Controller,
// forwards pointer gestures to it (BeginGesture, PressNode, ClickNode,
// ClickBackground, EndGesture) and surface-level pointer motion to its
// Tracker, and renders from Store.Nodes and Controller.State.
package mindmap
