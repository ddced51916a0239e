package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, map[string]string{"error": message})
}

// FieldErrors отдает ошибки валидации по полям в теле {"error": {...}}
func FieldErrors(w http.ResponseWriter, r *http.Request, code int, fields map[string]string) {
	JSON(w, r, code, map[string]interface{}{"error": fields})
}

// CSV отдает выгрузку как attachment
func CSV(w http.ResponseWriter, r *http.Request, filename, content string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}
