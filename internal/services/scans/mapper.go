package scans

import (
	"github.com/purushothaman-98/cinema-wall/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func MapDbScanToScan(scan mongodb.ScanDb) Scan {
	return Scan{
		Id:           scan.ID,
		CreatedAt:    scan.CreatedAt,
		Mode:         scan.Mode,
		SubjectName:  scan.SubjectName,
		ReviewerName: scan.ReviewerName,
		Title:        scan.Title,
		Thumbnail:    scan.Thumbnail,
		VideoURL:     scan.VideoURL,
		Result:       ParseResult(normalizeDoc(scan.Result)),
	}
}

// normalizeDoc flattens the bson document types the driver produces (bson.M,
// bson.D, bson.A) into plain maps and slices so ParseResult only ever sees
// map[string]any.
func normalizeDoc(m bson.M) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case bson.M:
		return normalizeDoc(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalizeValue(item)
		}
		return out
	case primitive.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = normalizeValue(e.Value)
		}
		return out
	case primitive.A:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeValue(item)
		}
		return out
	case primitive.DateTime:
		return t.Time()
	default:
		return v
	}
}
