package api

import (
	"github.com/lysyi3m/resource-scout/app/database"
	"github.com/lysyi3m/resource-scout/app/importer"
)

type Handler struct {
	importer    *importer.Importer
	resources   database.ResourceRepository
	dataSources database.DataSourceRepository
	searches    database.SearchRepository
}

// searchRequest is the body of POST /api/resources_for_searches.
type searchRequest struct {
	SearchIDs []int64 `json:"search_ids"`
}

// notesRequest is the body of the note-update endpoint.
type notesRequest struct {
	Notes string `json:"notes"`
}
