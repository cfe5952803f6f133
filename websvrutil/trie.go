package websvrutil

import (
	"net/http"

	"github.com/arkd0ng/webcore/sliceutil"
)

// node is one position in the routing trie. Every registered pattern walks
// a path of nodes from the root; a node can have at most one literal child
// per distinct path segment, at most one parameter child, and at most one
// wildcard child (which must terminate the pattern).
//
// node은 라우팅 트라이의 한 위치입니다. 등록된 모든 패턴은 루트에서 노드의
// 경로를 따라 내려가며, 하나의 노드는 세그먼트 값별로 최대 하나의 리터럴
// 자식, 최대 하나의 매개변수 자식, 최대 하나의 와일드카드 자식(패턴의
// 마지막이어야 함)을 가질 수 있습니다.
type node struct {
	literal  map[string]*node
	param    *paramEdge
	wildcard *wildcardEdge

	// terminals holds one entry per HTTP method registered at this exact
	// node. A node can be a valid endpoint for GET and POST simultaneously
	// without conflict; only same-method re-registration is ambiguous.
	terminals map[string]*terminal
}

// paramEdge is the single named-parameter edge leaving a node (":id").
type paramEdge struct {
	name string
	node *node
}

// wildcardEdge is the single catch-all edge leaving a node ("*path").
// It must be the last segment of any pattern that uses it.
type wildcardEdge struct {
	name string
	node *node
}

// terminal is what a matched node resolves to for one HTTP method.
type terminal struct {
	handler    http.HandlerFunc
	paramNames []string
	priority   int
	pattern    string
}

func newNode() *node {
	return &node{literal: make(map[string]*node)}
}

// insert walks (creating as needed) the trie for the given pre-parsed
// pattern segments and returns the terminal node at the end. It panics on
// structural ambiguity: a parameter edge re-declared with a different name
// at the same position, or a wildcard that isn't the pattern's last segment.
//
// insert는 주어진 사전 파싱된 패턴 세그먼트에 대해 트라이를 순회(필요시
// 생성)하고 끝에 있는 터미널 노드를 반환합니다. 구조적 모호성(같은 위치에
// 다른 이름으로 재선언된 매개변수 엣지, 패턴의 마지막이 아닌 와일드카드)이
// 있으면 패닉합니다.
func (n *node) insert(segments []segment, pattern string) *node {
	cur := n
	for i, seg := range segments {
		switch {
		case seg.isWildcard:
			if i != len(segments)-1 {
				panic("websvrutil: wildcard must be the last segment in pattern " + pattern)
			}
			if cur.wildcard == nil {
				cur.wildcard = &wildcardEdge{name: seg.value, node: newNode()}
			} else if cur.wildcard.name != seg.value {
				panic("websvrutil: ambiguous wildcard name at the same route position in pattern " + pattern)
			}
			cur = cur.wildcard.node
		case seg.isParam:
			if cur.param == nil {
				cur.param = &paramEdge{name: seg.value, node: newNode()}
			} else if cur.param.name != seg.value {
				panic("websvrutil: ambiguous parameter name (" + cur.param.name + " vs " + seg.value + ") at the same route position in pattern " + pattern)
			}
			cur = cur.param.node
		default:
			child, ok := cur.literal[seg.value]
			if !ok {
				child = newNode()
				cur.literal[seg.value] = child
			}
			cur = child
		}
	}
	return cur
}

// register records handler as the terminal for method at the node reached
// by walking segments. Two identical patterns for the same method resolve
// by priority: the higher-priority registration wins, and equal priorities
// are a fatal configuration error, caught at startup rather than silently
// shadowing the earlier route. Patterns that differ only in parameter or
// wildcard names at the same position never get this far — insert panics,
// since one shared edge carries the binding name for every route through
// it.
func (n *node) register(method string, segments []segment, pattern string, handler http.HandlerFunc, priority int) {
	end := n.insert(segments, pattern)
	if end.terminals == nil {
		end.terminals = make(map[string]*terminal)
	}
	if existing, exists := end.terminals[method]; exists {
		if existing.priority == priority {
			panic("websvrutil: route already registered: " + method + " " + pattern)
		}
		if existing.priority > priority {
			return
		}
	}

	paramNames := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.isParam || seg.isWildcard {
			paramNames = append(paramNames, seg.value)
		}
	}

	end.terminals[method] = &terminal{
		handler:    handler,
		paramNames: paramNames,
		priority:   priority,
		pattern:    pattern,
	}
}

// match walks path segments against the trie, preferring literal edges,
// then the parameter edge, then the wildcard edge at each position — no
// backtracking past a successful deeper match, but a dead end in one
// branch does fall back to trying the next-lower-priority edge at the
// same node. It returns the node that owns the terminal (so the caller can
// distinguish "no route" from "route exists, wrong method") along with
// extracted parameter values.
//
// match는 경로 세그먼트를 트라이와 대조하며, 각 위치에서 리터럴 엣지를
// 우선 시도하고, 그다음 매개변수 엣지, 마지막으로 와일드카드 엣지를
// 시도합니다. 성공한 더 깊은 매칭을 넘어서는 백트래킹은 없지만, 한
// 분기가 막다른 길이면 같은 노드에서 우선순위가 낮은 엣지로 폴백합니다.
func (n *node) match(segments []string) (*node, map[string]string, bool) {
	if len(segments) == 0 {
		if n.terminals != nil {
			return n, map[string]string{}, true
		}
		// A wildcard matches an empty remainder too, so /files/*path
		// resolves /files/ with path bound to "".
		if n.wildcard != nil {
			return n.wildcard.node, map[string]string{n.wildcard.name: ""}, true
		}
		return nil, nil, false
	}

	head, tail := segments[0], segments[1:]

	if child, ok := n.literal[head]; ok {
		if end, params, ok := child.match(tail); ok {
			return end, params, true
		}
	}

	if n.param != nil {
		if end, params, ok := n.param.node.match(tail); ok {
			params[n.param.name] = head
			return end, params, true
		}
	}

	if n.wildcard != nil {
		return n.wildcard.node, map[string]string{n.wildcard.name: joinSegments(segments)}, true
	}

	return nil, nil, false
}

func joinSegments(segments []string) string {
	out := segments[0]
	for _, s := range segments[1:] {
		out += "/" + s
	}
	return out
}

// allowedMethods returns the sorted list of HTTP methods with a terminal
// at this node, used to build the Allow header on a 405 response.
func (n *node) allowedMethods() []string {
	methods := make([]string, 0, len(n.terminals))
	for m := range n.terminals {
		methods = append(methods, m)
	}
	return sliceutil.Sort(methods)
}
