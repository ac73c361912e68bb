package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"petemporio/internal/config"
	"petemporio/internal/database"
	"petemporio/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM invoices")
	db.Exec("DELETE FROM employee_services")
	db.Exec("DELETE FROM pets")
	db.Exec("DELETE FROM breeds")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@petemporio.com",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@petemporio.com / admin123")

	groomerTitles := []string{"Groomer", "Groomer", "Veterinarian"}
	employees := make([]domain.User, 0, len(groomerTitles))
	for i, title := range groomerTitles {
		hash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
		e := domain.User{
			Email:        fmt.Sprintf("staff%d@petemporio.com", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleEmployee,
			Name:         fmt.Sprintf("Employee %d", i+1),
			JobTitle:     title,
		}
		db.Create(&e)
		employees = append(employees, e)
	}

	customers := make([]domain.User, 0, 3)
	customerEmails := []string{"ana@example.com", "bruno@example.com", "carla@example.com"}
	for i, email := range customerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		c := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleCustomer,
			Name:         fmt.Sprintf("Customer %d", i+1),
			Phone:        fmt.Sprintf("+55 11 9999-00%02d", i+1),
			Document:     fmt.Sprintf("000.000.000-%02d", i+1),
		}
		db.Create(&c)
		customers = append(customers, c)
	}

	// ================== BREEDS & PETS ==================
	log.Println("Creating breeds and pets...")

	breedNames := [][2]string{
		{"Poodle", "dog"},
		{"Golden Retriever", "dog"},
		{"Shih Tzu", "dog"},
		{"Persian", "cat"},
		{"Siamese", "cat"},
	}
	breeds := make([]domain.Breed, 0, len(breedNames))
	for _, bn := range breedNames {
		b := domain.Breed{Name: bn[0], Species: bn[1]}
		db.Create(&b)
		breeds = append(breeds, b)
	}

	petNames := []string{"Rex", "Luna", "Thor", "Mia", "Bob", "Nina"}
	pets := make([]domain.Pet, 0, len(petNames))
	for i, name := range petNames {
		owner := customers[i%len(customers)]
		breed := breeds[i%len(breeds)]
		p := domain.Pet{
			Name:    name,
			OwnerID: owner.ID,
			BreedID: &breed.ID,
			Active:  true,
		}
		db.Create(&p)
		pets = append(pets, p)
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")

	catalog := []struct {
		name     string
		price    float64
		duration int
		featured bool
	}{
		{"Full Grooming", 120, 90, true},
		{"Bath & Brush", 60, 45, true},
		{"Nail Trim", 25, 15, false},
		{"Veterinary Checkup", 150, 30, false},
		{"Teeth Cleaning", 80, 30, false},
	}
	services := make([]domain.Service, 0, len(catalog))
	for _, c := range catalog {
		s := domain.Service{
			Name:            c.name,
			Price:           c.price,
			DurationMinutes: c.duration,
			Active:          true,
			Featured:        c.featured,
		}
		db.Create(&s)
		services = append(services, s)
	}

	// Qualifications: groomers take grooming, the vet takes clinical work.
	for i := range services {
		var qualified []domain.User
		switch services[i].Name {
		case "Veterinary Checkup", "Teeth Cleaning":
			qualified = []domain.User{employees[2]}
		default:
			qualified = []domain.User{employees[0], employees[1]}
		}
		if err := db.Model(&services[i]).Association("QualifiedEmployees").Replace(qualified); err != nil {
			log.Fatal("Qualification seed failed:", err)
		}
	}

	// ================== APPOINTMENTS ==================
	log.Println("Creating appointments...")

	now := time.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	seedAppts := []struct {
		service  domain.Service
		pet      domain.Pet
		employee domain.User
		start    time.Time
		status   domain.AppointmentStatus
	}{
		{services[0], pets[0], employees[0], tomorrow.Add(9 * time.Hour), domain.AppointmentScheduled},
		{services[1], pets[1], employees[1], tomorrow.Add(10 * time.Hour), domain.AppointmentScheduled},
		{services[3], pets[2], employees[2], tomorrow.Add(14 * time.Hour), domain.AppointmentScheduled},
		{services[2], pets[3], employees[0], tomorrow.AddDate(0, 0, -3).Add(11 * time.Hour), domain.AppointmentCompleted},
	}
	for _, sa := range seedAppts {
		a := domain.Appointment{
			ServiceID:     sa.service.ID,
			PetID:         sa.pet.ID,
			EmployeeID:    sa.employee.ID,
			StartTime:     sa.start,
			EndTime:       sa.start.Add(sa.service.Duration()),
			Status:        sa.status,
			ChargedAmount: sa.service.Price,
		}
		db.Create(&a)
	}

	log.Println("Seed finished")
}
