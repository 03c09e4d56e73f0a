package crawl

// Queue is a FIFO of URLs that ignores URLs it has already seen.
type Queue struct {
	items   []string
	visited map[string]bool
	idx     int
}

func NewQueue() *Queue {
	return &Queue{
		visited: make(map[string]bool),
	}
}

// Add enqueues url unless it was added before.
func (q *Queue) Add(url string) {
	if q.visited[url] {
		return
	}
	q.visited[url] = true
	q.items = append(q.items, url)
}

func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the oldest unread URL. Call HasNext first.
func (q *Queue) Next() string {
	url := q.items[q.idx]
	q.idx++
	return url
}

// Visited is the number of distinct URLs ever added.
func (q *Queue) Visited() int {
	return len(q.visited)
}

// All returns every added URL in insertion order.
func (q *Queue) All() []string {
	return q.items
}
