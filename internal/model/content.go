package model

type ContentType string

const (
	ContentDua          ContentType = "DUA"
	ContentHadith       ContentType = "HADITH"
	ContentSalawatText  ContentType = "SALAWAT_TEXT"
	ContentSalawatAudio ContentType = "SALAWAT_AUDIO"
	ContentEtiquette    ContentType = "ETIQUETTE"
)

func ValidContentType(t ContentType) bool {
	switch t {
	case ContentDua, ContentHadith, ContentSalawatText, ContentSalawatAudio, ContentEtiquette:
		return true
	}
	return false
}

// ReligiousContent is static reference text, independent of the
// campaign/participation graph.
// swagger:model ReligiousContent
type ReligiousContent struct {
	UUIDBase
	Title    string      `gorm:"size:200;not null" json:"title"`
	Content  string      `gorm:"type:text;not null" json:"content"`
	Type     ContentType `gorm:"size:20;not null;index" json:"type"`
	AudioURL string      `gorm:"size:255" json:"audioUrl,omitempty"`
	ImageURL string      `gorm:"size:255" json:"imageUrl,omitempty"`
	IsActive bool        `gorm:"default:true;index" json:"isActive"`
}

func (ReligiousContent) TableName() string {
	return "religious_content"
}
