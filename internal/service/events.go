// internal/service/events.go
package service

import (
	"log"

	"github.com/unclebandit/campaign-catalog/internal/queue"
)

// notify publishes a catalog change event. Events are best effort:
// broker failures are logged and never fail the request.
func notify(events queue.Publisher, entity string, id int, action string) {
	if events == nil {
		return
	}
	if err := events.Publish(queue.Event{Entity: entity, ID: id, Action: action}); err != nil {
		log.Println("⚠️ failed to publish catalog event:", err)
	}
}

func clampPage(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize
	return page, pageSize, offset
}

func paginationMap(page, pageSize, total int) map[string]int {
	totalPages := (total + pageSize - 1) / pageSize
	return map[string]int{
		"page":        page,
		"page_size":   pageSize,
		"total_count": total,
		"total_pages": totalPages,
	}
}
