package database

import (
	"fmt"
	"log"

	"sofreh_salawat_backend/internal/config"
	"sofreh_salawat_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate runs AutoMigrate for every model; also used by tests against
// an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.UserStats{},
		&model.Prayer{},
		&model.PrayerStats{},
		&model.Participation{},
		&model.ReligiousContent{},
	)
}

// SeedDefaultContent inserts the baseline reference texts when the
// catalog is empty, mirroring the product's seed data.
func SeedDefaultContent(db *gorm.DB) {
	var count int64
	db.Model(&model.ReligiousContent{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.ReligiousContent{
		{
			Title:    "دعای سلامتی امام زمان",
			Content:  "اللَّهُمَّ كُنْ لِوَلِيِّكَ الْحُجَّةِ بْنِ الْحَسَنِ صَلَوَاتُكَ عَلَيْهِ وَعَلَى آبَائِهِ فِي هَذِهِ السَّاعَةِ وَفِي كُلِّ سَاعَةٍ وَلِيًّا وَحَافِظًا وَقَائِدًا وَنَاصِرًا وَدَلِيلًا وَعَيْنًا حَتَّى تُسْكِنَهُ أَرْضَكَ طَوْعًا وَتُمَتِّعَهُ فِيهَا طَوِيلًا",
			Type:     model.ContentDua,
			IsActive: true,
		},
		{
			Title:    "حدیث درباره صلوات",
			Content:  "قالَ رَسُولُ اللَّهِ صَلَّى اللَّهُ عَلَيْهِ وَآلِهِ: مَنْ صَلَّى عَلَيَّ صَلَاةً وَاحِدَةً صَلَّى اللَّهُ عَلَيْهِ عَشْرَ صَلَوَاتٍ وَحُطَّتْ عَنْهُ عَشْرُ خَطِيئَاتٍ وَرُفِعَتْ لَهُ عَشْرُ دَرَجَاتٍ",
			Type:     model.ContentHadith,
			IsActive: true,
		},
		{
			Title:    "صلوات شریف",
			Content:  "اللَّهُمَّ صَلِّ عَلَى مُحَمَّدٍ وَآلِ مُحَمَّدٍ",
			Type:     model.ContentSalawatText,
			IsActive: true,
		},
		{
			Title:    "آداب خواندن صلوات",
			Content:  "1. با وضو خواندن صلوات مستحب است\n2. خواندن صلوات در مسجد ثواب بیشتری دارد\n3. خواندن صلوات با صدای بلند مستحب است\n4. خواندن صلوات در جماعت ثواب بیشتری دارد",
			Type:     model.ContentEtiquette,
			IsActive: true,
		},
	}
	for i := range defaults {
		db.Create(&defaults[i])
	}
}
