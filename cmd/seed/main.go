package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"syana-server/config"
)

type seedService struct {
	Name        string
	NameAr      string
	Description string
	CardImage   string
}

type seedArea struct {
	Name   string
	NameAr string
	Image  string
}

type seedFaq struct {
	Question   string
	QuestionAr string
	Answer     string
	AnswerAr   string
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}
	log.Println("✅ Successfully connected to database")

	seedServices(db)
	seedAreas(db)
	seedFaqs(db)

	log.Println("🎉 Seeding complete")
}

func seedServices(db *sql.DB) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM services").Scan(&count); err != nil {
		log.Fatal("Failed to check services count:", err)
	}
	if count > 0 {
		log.Printf("⚠️  Services already exist (%d found). Skipping.", count)
		return
	}

	services := []seedService{
		{
			Name:        "Plumbing",
			NameAr:      "سباكة",
			Description: "Leak repair, fixture installation, water heater service and drainage maintenance.",
			CardImage:   "https://res.cloudinary.com/syana/image/upload/services/plumbing.jpg",
		},
		{
			Name:        "Electrical",
			NameAr:      "كهرباء",
			Description: "Wiring, lighting, breaker panels and appliance hookups by certified electricians.",
			CardImage:   "https://res.cloudinary.com/syana/image/upload/services/electrical.jpg",
		},
		{
			Name:        "Air Conditioning",
			NameAr:      "تكييف",
			Description: "AC installation, gas refill, duct cleaning and seasonal maintenance contracts.",
			CardImage:   "https://res.cloudinary.com/syana/image/upload/services/ac.jpg",
		},
		{
			Name:        "Painting",
			NameAr:      "دهان",
			Description: "Interior and exterior painting with surface preparation and color consultation.",
			CardImage:   "https://res.cloudinary.com/syana/image/upload/services/painting.jpg",
		},
		{
			Name:        "Carpentry",
			NameAr:      "نجارة",
			Description: "Custom woodwork, door and cabinet repair, furniture assembly.",
			CardImage:   "https://res.cloudinary.com/syana/image/upload/services/carpentry.jpg",
		},
		{
			Name:        "Cleaning",
			NameAr:      "تنظيف",
			Description: "Deep cleaning for homes and offices, including post-renovation cleanup.",
			CardImage:   "https://res.cloudinary.com/syana/image/upload/services/cleaning.jpg",
		},
	}

	now := time.Now()
	for _, s := range services {
		_, err := db.Exec(`
			INSERT INTO services (id, name, name_ar, description, past_jobs, service_card_image, in_app, created_at, updated_at)
			VALUES ($1, $2, $3, $4, 0, $5, true, $6, $6)`,
			uuid.NewString(), s.Name, s.NameAr, s.Description, s.CardImage, now)
		if err != nil {
			log.Fatalf("Failed to insert service %s: %v", s.Name, err)
		}
		log.Printf("✅ Inserted service: %s", s.Name)
	}
}

func seedAreas(db *sql.DB) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM areas").Scan(&count); err != nil {
		log.Fatal("Failed to check areas count:", err)
	}
	if count > 0 {
		log.Printf("⚠️  Areas already exist (%d found). Skipping.", count)
		return
	}

	areas := []seedArea{
		{Name: "Kitchen", NameAr: "مطبخ", Image: "https://res.cloudinary.com/syana/image/upload/areas/kitchen.jpg"},
		{Name: "Bathroom", NameAr: "حمام", Image: "https://res.cloudinary.com/syana/image/upload/areas/bathroom.jpg"},
		{Name: "Bedroom", NameAr: "غرفة نوم", Image: "https://res.cloudinary.com/syana/image/upload/areas/bedroom.jpg"},
		{Name: "Living Room", NameAr: "غرفة معيشة", Image: "https://res.cloudinary.com/syana/image/upload/areas/living-room.jpg"},
		{Name: "Garden", NameAr: "حديقة", Image: "https://res.cloudinary.com/syana/image/upload/areas/garden.jpg"},
		{Name: "Garage", NameAr: "كراج", Image: "https://res.cloudinary.com/syana/image/upload/areas/garage.jpg"},
	}

	now := time.Now()
	for _, a := range areas {
		_, err := db.Exec(`
			INSERT INTO areas (id, name, name_ar, area_image, in_app, created_at, updated_at)
			VALUES ($1, $2, $3, $4, true, $5, $5)`,
			uuid.NewString(), a.Name, a.NameAr, a.Image, now)
		if err != nil {
			log.Fatalf("Failed to insert area %s: %v", a.Name, err)
		}
		log.Printf("✅ Inserted area: %s", a.Name)
	}
}

func seedFaqs(db *sql.DB) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM faqs").Scan(&count); err != nil {
		log.Fatal("Failed to check faqs count:", err)
	}
	if count > 0 {
		log.Printf("⚠️  FAQs already exist (%d found). Skipping.", count)
		return
	}

	faqs := []seedFaq{
		{
			Question:   "How do I get a quote for my repair?",
			QuestionAr: "كيف أحصل على تسعيرة لطلب الصيانة؟",
			Answer:     "Create an order describing the issue and our team will send a quote to your app.",
			AnswerAr:   "أنشئ طلباً يصف المشكلة وسيرسل فريقنا تسعيرة إلى تطبيقك.",
		},
		{
			Question:   "Can I reschedule a booking?",
			QuestionAr: "هل يمكنني تغيير موعد الحجز؟",
			Answer:     "Yes, upcoming bookings can be rescheduled from the bookings screen.",
			AnswerAr:   "نعم، يمكن تغيير موعد الحجوزات القادمة من شاشة الحجوزات.",
		},
		{
			Question:   "What happens after I approve a quote?",
			QuestionAr: "ماذا يحدث بعد موافقتي على التسعيرة؟",
			Answer:     "A booking is created automatically and the company is notified of your schedule.",
			AnswerAr:   "يتم إنشاء حجز تلقائياً ويتم إخطار الشركة بموعدك.",
		},
	}

	now := time.Now()
	for _, f := range faqs {
		_, err := db.Exec(`
			INSERT INTO faqs (id, question, question_ar, answer, answer_ar, in_app, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, true, $6, $6)`,
			uuid.NewString(), f.Question, f.QuestionAr, f.Answer, f.AnswerAr, now)
		if err != nil {
			log.Fatalf("Failed to insert faq: %v", err)
		}
	}
	log.Printf("✅ Inserted %d FAQs", len(faqs))
}
