package handlers

import (
	"net/http"
	"strconv"

	"lagerapp/config"
	"lagerapp/models"
)

const infosPerPage = 10

// ListInfos returns the info board entries, paginated and ordered by
// title.
func ListInfos(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	var total int64
	if err := config.DB.Model(&models.Info{}).Count(&total).Error; err != nil {
		http.Error(w, "failed to count infos: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var infos []models.Info
	if err := config.DB.Order("title").
		Offset((page - 1) * infosPerPage).
		Limit(infosPerPage).
		Find(&infos).Error; err != nil {
		http.Error(w, "failed to fetch infos: "+err.Error(), http.StatusInternalServerError)
		return
	}

	totalPages := int((total + infosPerPage - 1) / infosPerPage)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"infos":      infos,
		"page":       page,
		"totalPages": totalPages,
		"total":      total,
	})
}
