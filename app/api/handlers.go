package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"

	"github.com/lysyi3m/resource-scout/app/database"
	"github.com/lysyi3m/resource-scout/app/importer"
)

func NewHandler(imp *importer.Importer, resources database.ResourceRepository,
	dataSources database.DataSourceRepository, searches database.SearchRepository) *Handler {
	return &Handler{
		importer:    imp,
		resources:   resources,
		dataSources: dataSources,
		searches:    searches,
	}
}

func (h *Handler) Home(c *gin.Context) {
	resources, err := h.resources.List("")
	if err != nil {
		slog.Error("Database error", "operation", "list_resources", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "resources.html", gin.H{
		"Resources": resources,
	})
}

func (h *Handler) Search(c *gin.Context) {
	keywords := c.DefaultPostForm("keywords", "python developer")
	location := c.DefaultPostForm("location", "remote")

	result, err := h.importer.RunImport(c.Request.Context(), keywords, location)
	if err != nil {
		slog.Error("Import failed", "keywords", keywords, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Imported %d new resources.", result.Imported),
		"total_fetched": result.Fetched,
	})
}

func (h *Handler) ListResources(c *gin.Context) {
	resources, err := h.resources.List(c.Query("q"))
	if err != nil {
		slog.Error("Database error", "operation", "list_resources", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if resources == nil {
		resources = []database.Resource{}
	}

	c.JSON(http.StatusOK, resources)
}

func (h *Handler) SaveFetched(c *gin.Context) {
	report := h.importer.SaveFetched()

	c.JSON(http.StatusOK, gin.H{
		"new":        report.New,
		"duplicates": report.Duplicates,
		"errors":     report.Errors,
	})
}

func (h *Handler) ShowDataSources(c *gin.Context) {
	sources, err := h.dataSources.ListDataSources()
	if err != nil {
		slog.Error("Database error", "operation", "list_data_sources", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "data_sources.html", gin.H{
		"DataSources": sources,
	})
}

func (h *Handler) CreateDataSource(c *gin.Context) {
	name := c.DefaultPostForm("name", "My Data Source")
	sourceType := c.DefaultPostForm("source_type", "RSS")
	bestFor := c.DefaultPostForm("best_for", "General")
	sourceURL := c.PostForm("source_url")

	if _, err := h.dataSources.AddDataSource(name, sourceType, bestFor, sourceURL); err != nil {
		slog.Error("Database error", "operation", "add_data_source", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusSeeOther, "/datasources")
}

func (h *Handler) ShowSavedSearches(c *gin.Context) {
	searches, err := h.searches.ListSearches()
	if err != nil {
		slog.Error("Database error", "operation", "list_searches", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	sources, err := h.dataSources.ListDataSources()
	if err != nil {
		slog.Error("Database error", "operation", "list_data_sources", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "saved_searches.html", gin.H{
		"Searches":    searches,
		"DataSources": sources,
	})
}

func (h *Handler) CreateSavedSearch(c *gin.Context) {
	name := c.DefaultPostForm("name", "My Search")
	keywords := c.PostForm("keywords")
	location := c.PostForm("location")
	isActive := c.DefaultPostForm("is_active", "1") == "1"
	dataSourceID := parseOptionalID(c.PostForm("data_source_id"))

	if _, err := h.searches.AddSearch(name, keywords, location, isActive, dataSourceID); err != nil {
		slog.Error("Database error", "operation", "add_search", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusSeeOther, "/savedsearches")
}

func (h *Handler) EditSavedSearch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search id"})
		return
	}

	var update database.SearchUpdate
	if v, ok := c.GetPostForm("name"); ok {
		update.Name = &v
	}
	if v, ok := c.GetPostForm("keywords"); ok {
		update.Keywords = &v
	}
	if v, ok := c.GetPostForm("location"); ok {
		update.Location = &v
	}
	if v, ok := c.GetPostForm("is_active"); ok {
		isActive := v == "1"
		update.IsActive = &isActive
	}
	if v, ok := c.GetPostForm("data_source_id"); ok && v != "" {
		update.DataSourceID = parseOptionalID(v)
	}

	if err := h.searches.UpdateSearch(id, update); err != nil {
		h.renderStoreError(c, "update_search", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/savedsearches")
}

func (h *Handler) DeleteSavedSearch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search id"})
		return
	}

	if err := h.searches.DeleteSearch(id); err != nil {
		h.renderStoreError(c, "delete_search", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/savedsearches")
}

func (h *Handler) RunSavedSearch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search id"})
		return
	}

	if err := h.importer.RunSavedSearch(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Search not found."})
			return
		}
		slog.Error("Saved search run failed", "search_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Saved search run failed"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/savedsearches")
}

func (h *Handler) APIListSavedSearches(c *gin.Context) {
	searches, err := h.searches.ListSearches()
	if err != nil {
		slog.Error("Database error", "operation", "list_searches", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if searches == nil {
		searches = []database.SavedSearch{}
	}

	c.JSON(http.StatusOK, searches)
}

// APIResourcesForSearches unions the keyword sets of the referenced saved
// searches and returns stored resources matching any of those keywords in
// title or description.
func (h *Handler) APIResourcesForSearches(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var keywords []string
	for _, id := range req.SearchIDs {
		search, err := h.searches.GetSearch(id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				continue
			}
			slog.Error("Database error", "operation", "get_search", "search_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		keywords = append(keywords, strings.Fields(search.Keywords)...)
	}

	if len(keywords) == 0 {
		c.JSON(http.StatusOK, []database.Resource{})
		return
	}

	resources, err := h.resources.List("")
	if err != nil {
		slog.Error("Database error", "operation", "list_resources", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	matched := make([]database.Resource, 0, len(resources))
	for _, res := range resources {
		if containsAnyKeyword(res.Title+" "+res.Description, keywords) {
			matched = append(matched, res)
		}
	}

	c.JSON(http.StatusOK, matched)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource id"})
		return
	}

	status := c.Param("status")
	if !database.IsValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status: " + status})
		return
	}

	if err := h.resources.UpdateStatus(id, status); err != nil {
		h.renderStoreError(c, "update_status", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) UpdateNotes(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource id"})
		return
	}

	var req notesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.resources.UpdateNotes(id, req.Notes); err != nil {
		h.renderStoreError(c, "update_notes", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if count, err := h.resources.GetResourceCount(); err == nil {
		health["resources"] = count
	}

	if count, err := h.searches.GetSearchCount(); err == nil {
		health["searches"] = count
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) Test(c *gin.Context) {
	c.String(http.StatusOK, "This is a test endpoint.")
}

func (h *Handler) renderStoreError(c *gin.Context, operation string, err error) {
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	slog.Error("Database error", "operation", operation, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
}

func parseOptionalID(value string) *int64 {
	if value == "" {
		return nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func containsAnyKeyword(text string, keywords []string) bool {
	fold := cases.Fold()
	folded := fold.String(text)

	for _, keyword := range keywords {
		if strings.Contains(folded, fold.String(keyword)) {
			return true
		}
	}

	return false
}
