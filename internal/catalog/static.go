package catalog

import "github.com/edurank-nepal/api/internal/public/domain"

func schoolBreakdown(academics, facilities, reviews int) domain.ScoreBreakdown {
	return domain.ScoreBreakdown{
		{Label: "Academic Quality", Points: academics},
		{Label: "Facilities", Points: facilities},
		{Label: "Parent Reviews", Points: reviews},
		{Label: "Teacher Ratio", Points: 10},
		{Label: "Transparency", Points: 10},
	}
}

func consultancyBreakdown(success, reviews, experience int) domain.ScoreBreakdown {
	return domain.ScoreBreakdown{
		{Label: "Visa Success", Points: success},
		{Label: "Student Reviews", Points: reviews},
		{Label: "Experience", Points: experience},
		{Label: "Transparency", Points: 10},
		{Label: "Completeness", Points: 10},
	}
}

func intPtr(v int) *int             { return &v }
func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

const imageBase = "https://images.unsplash.com/"

// Static returns a fresh copy of the built-in catalog. Records without an
// explicit slug get one derived from their name.
func Static() []domain.Institution {
	list := staticInstitutions()
	for i := range list {
		if list[i].Slug == "" {
			list[i].Slug = domain.Slugify(list[i].Name)
		}
	}
	return list
}

func staticInstitutions() []domain.Institution {
	return []domain.Institution{
		// Universities and colleges.
		{
			ID: "1", Name: "Tribhuvan University", Slug: "tribhuvan-university", Type: domain.TypeUniversity, Tier: domain.TierPremium,
			Address: "Kirtipur, Kathmandu", City: "Kathmandu", District: "Kathmandu", Province: "Bagmati",
			Phone: "01-4330436", Email: "info@tu.edu.np", Website: "https://tu.edu.np", FoundedYear: intPtr(1959),
			Description: "The oldest and largest university in Nepal.", Rating: 4.5, Affiliation: []string{"TU"},
			Programs: []string{"Science", "Management", "Arts", "Education", "Law"}, MediumOfInstruction: "English/Nepali",
			Fees:       15000,
			FeeDetails: &domain.FeeDetails{Admission: 5000, Monthly: 1000, Annual: 15000, Others: 2000, Hostel: int64Ptr(6000)},
			Features:   []string{"Library", "Sports", "Cafeteria", "Labs"}, Reviews: 120, IsVerified: true,
			Image:        imageBase + "photo-1541339907198-e08756dedf3f?q=80&w=800&auto=format&fit=crop",
			EduRankScore: intPtr(92), ScoreBreakdown: schoolBreakdown(28, 18, 28),
		},
		{
			ID: "2", Name: "Kathmandu University", Slug: "kathmandu-university", Type: domain.TypeUniversity, Tier: domain.TierPremium,
			Address: "Dhulikhel, Kavre", City: "Dhulikhel", District: "Kavre", Province: "Bagmati",
			Phone: "011-661399", Email: "info@ku.edu.np", Website: "https://ku.edu.np", FoundedYear: intPtr(1991),
			Description: "A sovereign, autonomous, non-profit, non-government institution.", Rating: 4.8,
			Fees: 250000, Features: []string{"Hostel", "Transport", "WiFi"}, Reviews: 85, IsVerified: true,
			Image:        imageBase + "photo-1562774053-701939374585?q=80&w=800&auto=format&fit=crop",
			EduRankScore: intPtr(96), ScoreBreakdown: schoolBreakdown(29, 19, 29),
		},
		{
			ID: "3", Name: "St. Xaviers College", Slug: "st-xaviers-college", Type: domain.TypeCollege, Tier: domain.TierPremium,
			Address: "Maitighar, Kathmandu", City: "Kathmandu", District: "Kathmandu", Province: "Bagmati",
			Phone: "01-4221365", Email: "info@sxc.edu.np", Website: "https://sxc.edu.np", FoundedYear: intPtr(1988),
			Description: "Top-tier college managed by the Society of Jesus.", Rating: 4.9,
			Fees:       80000,
			FeeDetails: &domain.FeeDetails{Admission: 20000, Monthly: 5000, Annual: 80000, Others: 10000},
			Features:   []string{"Library", "Auditorium", "Sports"}, Reviews: 300, IsVerified: true,
			Image:        imageBase + "photo-1592280771190-3e2e4d571952?q=80&w=800&auto=format&fit=crop",
			EduRankScore: intPtr(98), ScoreBreakdown: schoolBreakdown(30, 18, 30),
		},
		{
			ID: "4", Name: "Pulchowk Campus", Slug: "pulchowk-campus", Type: domain.TypeCollege, Tier: domain.TierFree,
			Address: "Pulchowk, Lalitpur", City: "Lalitpur", District: "Lalitpur", Province: "Bagmati",
			Phone: "01-5521260", Email: "info@ioe.edu.np", Website: "https://ioe.edu.np", FoundedYear: intPtr(1972),
			Description: "The central campus of the Institute of Engineering.", Rating: 4.9,
			Fees: 20000, Features: []string{"Labs", "Workshops", "Robot Club"}, Reviews: 500, IsVerified: true,
			Image:        imageBase + "photo-1581094794329-cd8119604f89?q=80&w=800&auto=format&fit=crop",
			EduRankScore: intPtr(97), ScoreBreakdown: schoolBreakdown(29, 19, 28),
		},
		{
			ID: "5", Name: "Trinity International College", Slug: "trinity-college", Type: domain.TypeCollege, Tier: domain.TierPremium,
			Address: "Dillibazar, Kathmandu", City: "Kathmandu", District: "Kathmandu", Province: "Bagmati",
			Phone: "01-4445955", Email: "info@trinity.edu.np", Website: "https://trinity.edu.np", FoundedYear: intPtr(2008),
			Description: "Popular for +2 Science and Management.", Rating: 4.4,
			Fees: 95000, Features: []string{"Library", "Transport", "Cafeteria"}, Reviews: 150, IsVerified: true,
			Image:        imageBase + "photo-1523580494863-6f3031224c94?q=80&w=800&auto=format&fit=crop",
			EduRankScore: intPtr(88), ScoreBreakdown: schoolBreakdown(25, 18, 25),
		},

		// Schools.
		{
			ID: "7", Name: "Budhanilkantha School", Slug: "budhanilkantha-school", Type: domain.TypeSchool, Tier: domain.TierPremium,
			Address: "Budhanilkantha, Kathmandu", City: "Kathmandu", District: "Kathmandu", Province: "Bagmati",
			Phone: "01-4370248", Rating: 5.0, Fees: 400000,
			Features: []string{"Boarding", "Swimming Pool", "Sports Complex", "Library", "Labs"},
			Reviews:  200, IsVerified: true, Description: "National School of Nepal.",
			Image:        imageBase + "photo-1588072432836-e10032774350?q=80&w=800&auto=format&fit=crop",
			EduRankScore: intPtr(99), ScoreBreakdown: schoolBreakdown(30, 20, 29),
		},
		{
			ID: "8", Name: "Rato Bangala School", Slug: "rato-bangala", Type: domain.TypeSchool, Tier: domain.TierPremium,
			Address: "Patan Dhoka, Lalitpur", City: "Lalitpur", District: "Lalitpur", Province: "Bagmati",
			Phone: "01-5522614", Rating: 4.8, Fees: 550000, Features: []string{"Arts", "Music", "Labs", "Cafeteria"},
			Reviews: 110, IsVerified: true, Description: "A progressive school offering distinctive education.",
			Image:        imageBase + "photo-1503676260728-1c00da094a0b?q=80&w=800&auto=format&fit=crop",
			EduRankScore: intPtr(95), ScoreBreakdown: schoolBreakdown(28, 19, 28),
		},
		{
			ID: "9", Name: "Gems School", Slug: "gems-school", Type: domain.TypeSchool, Tier: domain.TierFree,
			Address: "Dhapakhel, Lalitpur", City: "Lalitpur", District: "Lalitpur", Province: "Bagmati",
			Rating: 4.6, Fees: 350000, Features: []string{"Swimming Pool", "Auditorium", "Bus Service", "Sports"},
			Reviews: 180, IsVerified: true, Image: imageBase + "photo-1577896334614-201b37d54f97?q=80&w=800&auto=format&fit=crop",
			EduRankScore: intPtr(90), ScoreBreakdown: schoolBreakdown(26, 19, 25),
		},
		{
			ID: "10", Name: "St. Marys School", Slug: "st-marys", Type: domain.TypeSchool, Tier: domain.TierFree,
			Address: "Jawalakhel, Lalitpur", City: "Lalitpur", District: "Lalitpur", Province: "Bagmati",
			Rating: 4.8, Fees: 120000, Features: []string{"Library", "Sports", "Music"}, Reviews: 250, IsVerified: true,
			Image:        imageBase + "photo-1544531586-fde5298cdd40?q=80&w=800&auto=format&fit=crop",
			EduRankScore: intPtr(94), ScoreBreakdown: schoolBreakdown(29, 17, 28),
		},
		{
			ID: "20", Name: "Ullens School", Slug: "ullens-school", Type: domain.TypeSchool, Tier: domain.TierPremium,
			Address: "Khumaltar, Lalitpur", City: "Lalitpur", District: "Lalitpur", Province: "Bagmati",
			Rating: 4.9, Fees: 600000, Features: []string{"IB Board", "Swimming Pool", "Labs", "Arts"}, Reviews: 156, IsVerified: true,
			Image:        imageBase + "photo-1594608661623-aa0bd3a69d98?q=80&w=800",
			EduRankScore: intPtr(97), ScoreBreakdown: schoolBreakdown(29, 20, 28),
		},
		{
			ID: "21", Name: "Premier International School", Slug: "premier-international", Type: domain.TypeSchool, Tier: domain.TierPremium,
			Address: "Satdobato, Lalitpur", City: "Lalitpur", District: "Lalitpur", Province: "Bagmati",
			Rating: 4.6, Fees: 450000, Features: []string{"IB Board", "Sports", "Transport"}, Reviews: 89, IsVerified: true,
			Image:        imageBase + "photo-1509062522246-37559cc792f9?q=80&w=800",
			EduRankScore: intPtr(91), ScoreBreakdown: schoolBreakdown(27, 19, 25),
		},
		{
			ID: "22", Name: "Pathshala Nepal", Slug: "pathshala-nepal", Type: domain.TypeSchool, Tier: domain.TierFree,
			Address: "Baneshwor, Kathmandu", City: "Kathmandu", District: "Kathmandu", Province: "Bagmati",
			Rating: 4.5, Fees: 180000, Features: []string{"Culture Focused", "Labs", "Library"}, Reviews: 78, IsVerified: true,
			Image:        imageBase + "photo-1523050854058-8df90110c9f1?q=80&w=800",
			EduRankScore: intPtr(89), ScoreBreakdown: schoolBreakdown(26, 17, 26),
		},
		{
			ID: "23", Name: "Apex Life School", Slug: "apex-life", Type: domain.TypeSchool, Tier: domain.TierFree,
			Address: "Saraswati Nagar, Kathmandu", City: "Kathmandu", District: "Kathmandu", Province: "Bagmati",
			Rating: 4.3, Fees: 150000, Features: []string{"Sports", "Labs"}, Reviews: 45, IsVerified: false,
			Image:        imageBase + "photo-1580582932707-520aed937b7b?q=80&w=800",
			EduRankScore: intPtr(85), ScoreBreakdown: schoolBreakdown(25, 17, 23),
		},
		{
			ID: "24", Name: "Brihaspati Vidyasadan", Slug: "brihaspati", Type: domain.TypeSchool, Tier: domain.TierPremium,
			Address: "Naxal, Kathmandu", City: "Kathmandu", District: "Kathmandu", Province: "Bagmati",
			Rating: 4.6, Fees: 300000, Features: []string{"Pool", "History", "Ground"}, Reviews: 92, IsVerified: true,
			Image:        imageBase + "photo-1564981797816-1043664bf78d?q=80&w=800",
			EduRankScore: intPtr(92), ScoreBreakdown: schoolBreakdown(27, 19, 26),
		},
		{
			ID: "25", Name: "Galaxy Public School", Slug: "galaxy-public", Type: domain.TypeSchool, Tier: domain.TierFree,
			Address: "Gyaneshwor, Kathmandu", City: "Kathmandu", District: "Kathmandu", Province: "Bagmati",
			Rating: 4.4, Fees: 220000, Features: []string{"Hostel", "Labs"}, Reviews: 112, IsVerified: true,
			Image:        imageBase + "photo-1590494025114-1f6cc9e088b9?q=80&w=800",
			EduRankScore: intPtr(88), ScoreBreakdown: schoolBreakdown(26, 17, 25),
		},
		{
			ID: "26", Name: "Sanskriti International", Slug: "sanskriti", Type: domain.TypeSchool, Tier: domain.TierPremium,
			Address: "Kamaladi, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.7, Fees: 480000,
			Features: []string{"International Curriculum", "AC Classes"}, Reviews: 67, IsVerified: true,
			Image:        imageBase + "photo-1509062522246-37559cc792f9?q=80&w=800",
			EduRankScore: intPtr(94), ScoreBreakdown: schoolBreakdown(28, 19, 27),
		},
		{
			ID: "27", Name: "Rosebud School", Slug: "rosebud", Type: domain.TypeSchool, Tier: domain.TierFree,
			Address: "Buddhanagar, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.5, Fees: 190000,
			Features: []string{"Labs", "Transport"}, Reviews: 88, IsVerified: true,
			Image:        imageBase + "photo-1588072432836-e10032774350?q=80&w=800",
			EduRankScore: intPtr(87), ScoreBreakdown: schoolBreakdown(26, 17, 24),
		},

		// Preschools.
		{
			ID: "p1", Name: "Euro Kids", Slug: "euro-kids-kathmandu", Type: domain.TypePreschool, Tier: domain.TierPremium,
			Address: "Bansbari, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.8, Fees: 180000,
			Features: []string{"Montessori", "Play Area", "CCTV"}, Reviews: 150, IsVerified: true,
			Image:        imageBase + "photo-1596464716127-f9a87d21a6ac?q=80&w=800",
			EduRankScore: intPtr(96), ScoreBreakdown: schoolBreakdown(29, 20, 27),
			Description: "International standard preschool with focus on holistic development.",
		},
		{
			ID: "p2", Name: "Kangaroo Kids", Slug: "kangaroo-kids", Type: domain.TypePreschool, Tier: domain.TierPremium,
			Address: "Baluwatar, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.7, Fees: 200000,
			Features: []string{"Music", "Dance", "Meals"}, Reviews: 120, IsVerified: true,
			Image:        imageBase + "photo-1545558014-a9756f1ff810?q=80&w=800",
			EduRankScore: intPtr(94), ScoreBreakdown: schoolBreakdown(28, 19, 27),
		},
		{
			ID: "p3", Name: "Little Angels Kindergarten", Slug: "little-angels-kg", Type: domain.TypePreschool, Tier: domain.TierPremium,
			Address: "Hattiban, Lalitpur", City: "Lalitpur", District: "Lalitpur", Rating: 4.9, Fees: 150000,
			Features: []string{"Spacious", "Transport", "Swimming"}, Reviews: 180, IsVerified: true,
			Image:        imageBase + "photo-1577896334614-201b37d54f97?q=80&w=800",
			EduRankScore: intPtr(95), ScoreBreakdown: schoolBreakdown(29, 18, 28),
		},
		{
			ID: "p4", Name: "Shemrock Preschool", Slug: "shemrock", Type: domain.TypePreschool, Tier: domain.TierFree,
			Address: "Baneshwor, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.5, Fees: 100000,
			Features: []string{"Colorful Classrooms", "Safe"}, Reviews: 90, IsVerified: true,
			Image:        imageBase + "photo-1503676260728-1c00da094a0b?q=80&w=800",
			EduRankScore: intPtr(89), ScoreBreakdown: schoolBreakdown(26, 17, 26),
		},
		{
			ID: "p5", Name: "Kidzee", Slug: "kidzee-nepal", Type: domain.TypePreschool, Tier: domain.TierPremium,
			Address: "Kamaladi, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.6, Fees: 140000,
			Features: []string{"Structured Curriculum", "Tablets"}, Reviews: 110, IsVerified: true,
			Image:        imageBase + "photo-1588072432836-e10032774350?q=80&w=800",
			EduRankScore: intPtr(91), ScoreBreakdown: schoolBreakdown(27, 18, 26),
		},
		{
			ID: "p6", Name: "Montessori House", Slug: "montessori-house", Type: domain.TypePreschool, Tier: domain.TierFree,
			Address: "Patan, Lalitpur", City: "Lalitpur", District: "Lalitpur", Rating: 4.7, Fees: 90000,
			Features: []string{"Pure Montessori", "Garden"}, Reviews: 75, IsVerified: true,
			Image:        imageBase + "photo-1523050854058-8df90110c9f1?q=80&w=800",
			EduRankScore: intPtr(90), ScoreBreakdown: schoolBreakdown(27, 18, 25),
		},
		{
			ID: "p7", Name: "Early Childhood Center", Slug: "early-childhood", Type: domain.TypePreschool, Tier: domain.TierPremium,
			Address: "Kupondole, Lalitpur", City: "Lalitpur", District: "Lalitpur", Rating: 4.8, Fees: 160000,
			Features: []string{"Expert Staff", "Nutrition"}, Reviews: 130, IsVerified: true,
			Image:        imageBase + "photo-1564981797816-1043664bf78d?q=80&w=800",
			EduRankScore: intPtr(93), ScoreBreakdown: schoolBreakdown(28, 19, 26),
		},
		{
			ID: "p8", Name: "Pathways Preschool", Slug: "pathways", Type: domain.TypePreschool, Tier: domain.TierFree,
			Address: "Lazimpat, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.4, Fees: 110000,
			Features: []string{"Art", "Music"}, Reviews: 60, IsVerified: true,
			Image:        imageBase + "photo-1594608661623-aa0bd3a69d98?q=80&w=800",
			EduRankScore: intPtr(87), ScoreBreakdown: schoolBreakdown(25, 17, 25),
		},
		{
			ID: "p9", Name: "Stepping Stones", Slug: "stepping-stones", Type: domain.TypePreschool, Tier: domain.TierFree,
			Address: "Bhaktapur", City: "Bhaktapur", District: "Bhaktapur", Rating: 4.3, Fees: 80000,
			Features: []string{"Local Transport", "Care"}, Reviews: 45, IsVerified: false,
			Image:        imageBase + "photo-1509062522246-37559cc792f9?q=80&w=800",
			EduRankScore: intPtr(85), ScoreBreakdown: schoolBreakdown(25, 16, 24),
		},
		{
			ID: "p10", Name: "Ullens Kindergarten", Slug: "ullens-kg", Type: domain.TypePreschool, Tier: domain.TierPremium,
			Address: "Khumaltar, Lalitpur", City: "Lalitpur", District: "Lalitpur", Rating: 4.9, Fees: 250000,
			Features: []string{"IB PYP", "World Class Facilities"}, Reviews: 95, IsVerified: true,
			Image:        imageBase + "photo-1592280771190-3e2e4d571952?q=80&w=800",
			EduRankScore: intPtr(97), ScoreBreakdown: schoolBreakdown(29, 20, 28),
		},

		// Consultancies.
		{
			ID: "15", Name: "Alpha Education Consultancy", Slug: "alpha-education", Type: domain.TypeConsultancy, Tier: domain.TierPremium,
			Address: "Putalisadak, Kathmandu", City: "Kathmandu", District: "Kathmandu", Province: "Bagmati",
			Phone: "01-4222222", Email: "info@alphaedu.com", Website: "https://alphaedu.com", FoundedYear: intPtr(2012),
			Description: "Leading consultancy for USA, Australia, and Canada. Expert IELTS and PTE classes. Authorized representative of 50+ universities.",
			Rating:      4.8, Fees: 15000,
			FeeDetails:   &domain.FeeDetails{Annual: 15000, Others: 2000},
			Features:     []string{"Visa Guidance", "Mock Tests", "AC Classrooms"},
			Programs:     []string{"IELTS", "PTE", "SAT"},
			Destinations: []string{"USA", "Australia", "Canada"}, Reviews: 210, IsVerified: true,
			Image:           imageBase + "photo-1523240795612-9a054b0db644?q=80&w=800&auto=format&fit=crop",
			EduRankScore:    intPtr(95), ScoreBreakdown: consultancyBreakdown(29, 24, 14),
			VisaSuccessRate: float64Ptr(98), YearsInBusiness: intPtr(12), StudentsSent: intPtr(5000),
			Services: []string{"Visa Processing", "IELTS Classes", "SOP Writing"}, ServiceFee: "15k-25k",
		},
		{
			ID: "16", Name: "Global Reach Nepal", Slug: "global-reach", Type: domain.TypeConsultancy, Tier: domain.TierPremium,
			Address: "Dillibazar, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.7,
			Fees: 12000, Description: "Representing over 500 universities worldwide. Best counselors for UK and Australia.",
			Features: []string{"Career Counseling", "University Selection"}, Programs: []string{"IELTS", "TOEFL"},
			Destinations: []string{"UK", "Australia", "New Zealand", "Ireland"}, Reviews: 180, IsVerified: true,
			Image:           imageBase + "photo-1521791136064-7985c2d18854?q=80&w=800&auto=format&fit=crop",
			EduRankScore:    intPtr(94), ScoreBreakdown: consultancyBreakdown(28, 23, 15),
			VisaSuccessRate: float64Ptr(96), YearsInBusiness: intPtr(20), StudentsSent: intPtr(12000),
			Services: []string{"Counseling", "Visa App"}, ServiceFee: "Free",
		},
		{
			ID: "17", Name: "Bradford Education", Slug: "bradford-education", Type: domain.TypeConsultancy, Tier: domain.TierFree,
			Address: "New Baneshwor, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.5,
			Fees: 10000, Description: "Focus on Japan and Korea student visas.",
			Features: []string{"Language Classes", "Documentation Support"}, Programs: []string{"JLPT", "NAT"},
			Destinations: []string{"Japan", "South Korea"}, Reviews: 95, IsVerified: true,
			Image:           imageBase + "photo-1544928147-79a2dbc1f389?q=80&w=800&auto=format&fit=crop",
			EduRankScore:    intPtr(88), ScoreBreakdown: consultancyBreakdown(27, 22, 10),
			VisaSuccessRate: float64Ptr(90), YearsInBusiness: intPtr(8), StudentsSent: intPtr(1500),
			Services: []string{"Language Classes", "Documentation"}, ServiceFee: "10k",
		},
		{
			ID: "30", Name: "Edwise Foundation", Slug: "edwise-foundation", Type: domain.TypeConsultancy, Tier: domain.TierPremium,
			Address: "Subidhanagar, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.9, Fees: 0,
			Description: "US Education Specialists. Certified Counselors.",
			Features:    []string{"US Specialists", "Scholarship Help"}, Destinations: []string{"USA"}, Reviews: 300, IsVerified: true,
			Image:           imageBase + "photo-1552664730-d307ca884978?q=80&w=800",
			EduRankScore:    intPtr(98), ScoreBreakdown: consultancyBreakdown(29, 25, 15),
			VisaSuccessRate: float64Ptr(99), YearsInBusiness: intPtr(18), StudentsSent: intPtr(8000),
			Services: []string{"Complete US Processing"}, ServiceFee: "20k",
		},
		{
			ID: "31", Name: "IDP Nepal", Slug: "idp-nepal", Type: domain.TypeConsultancy, Tier: domain.TierPremium,
			Address: "Hattisar, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.8, Fees: 0,
			Description:  "Co-owners of IELTS. Global leader in international education services.",
			Features:     []string{"IELTS Owner", "Global Presence"},
			Destinations: []string{"Australia", "Canada", "UK", "USA", "New Zealand"},
			Reviews:      450, IsVerified: true, Image: imageBase + "photo-1571260899304-425eee4c7efc?q=80&w=800",
			EduRankScore:    intPtr(97), ScoreBreakdown: consultancyBreakdown(29, 24, 15),
			VisaSuccessRate: float64Ptr(97), YearsInBusiness: intPtr(50), StudentsSent: intPtr(50000),
			Services: []string{"IELTS", "Counseling"}, ServiceFee: "Free",
		},
		{
			ID: "32", Name: "Kangaroo Education", Slug: "kangaroo-edu", Type: domain.TypeConsultancy, Tier: domain.TierFree,
			Address: "Putalisadak, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.6, Fees: 0,
			Description: "Specialists for Australia and New Zealand.", Destinations: []string{"Australia", "New Zealand"},
			Features: []string{"Migration Agents", "Pre-departure"}, Reviews: 120, IsVerified: true,
			Image:           imageBase + "photo-1523050854058-8df90110c9f1?q=80&w=800",
			EduRankScore:    intPtr(89), ScoreBreakdown: consultancyBreakdown(27, 22, 12),
			VisaSuccessRate: float64Ptr(92), YearsInBusiness: intPtr(15), StudentsSent: intPtr(4000),
		},
		{
			ID: "33", Name: "AECC Global", Slug: "aecc-global", Type: domain.TypeConsultancy, Tier: domain.TierPremium,
			Address: "Dillibazar, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.7, Fees: 0,
			Description: "Global education consultancy with offices in 12 countries.", Destinations: []string{"Australia", "Canada", "UK", "USA"},
			Features: []string{"Global Network", "Free Application"}, Reviews: 200, IsVerified: true,
			Image:           imageBase + "photo-1522071820081-009f0129c71c?q=80&w=800",
			EduRankScore:    intPtr(93), ScoreBreakdown: consultancyBreakdown(28, 23, 14),
			VisaSuccessRate: float64Ptr(95), YearsInBusiness: intPtr(14), StudentsSent: intPtr(8000),
		},
		{
			ID: "34", Name: "Grace International", Slug: "grace-international", Type: domain.TypeConsultancy, Tier: domain.TierFree,
			Address: "Putalisadak, Kathmandu", City: "Kathmandu", District: "Kathmandu", Rating: 4.5, Fees: 0,
			Description: "Trusted name for Australian education.", Destinations: []string{"Australia"},
			Features: []string{"QEAC Certified", "Friendly"}, Reviews: 85, IsVerified: false,
			Image:           imageBase + "photo-1524178232363-1fb2b075b655?q=80&w=800",
			EduRankScore:    intPtr(86), ScoreBreakdown: consultancyBreakdown(26, 21, 10),
			VisaSuccessRate: float64Ptr(88), YearsInBusiness: intPtr(10), StudentsSent: intPtr(3000),
		},

		// Training centers.
		{
			ID: "18", Name: "Broadway Infosys", Slug: "broadway-infosys", Type: domain.TypeTrainingCenter, Tier: domain.TierPremium,
			Address: "Tinkune, Kathmandu", City: "Kathmandu", District: "Kathmandu", Phone: "01-4111849",
			Email: "info@broadwayinfosys.com", Website: "https://broadwayinfosys.com", FoundedYear: intPtr(2008),
			Description: "ISO 9001:2015 Certified IT Training Institute in Nepal.", Rating: 4.6, Fees: 20000,
			Features: []string{"Job Placement", "Internship", "Labs"},
			Programs: []string{"Python", "Java", "Web Design", "Digital Marketing", "Data Science"},
			Reviews:  350, IsVerified: true, Image: imageBase + "photo-1531482615713-2afd69097998?q=80&w=800&auto=format&fit=crop",
			EduRankScore: intPtr(93), ScoreBreakdown: schoolBreakdown(28, 19, 26),
		},
		{
			ID: "40", Name: "IT Training Nepal", Slug: "it-training-nepal", Type: domain.TypeTrainingCenter, Tier: domain.TierFree,
			Address: "Putalisadak, Kathmandu", City: "Kathmandu", Rating: 4.4, Fees: 15000,
			Features: []string{"Practical Focus", "Small Batches"}, Programs: []string{"PHP", "Laravel", "Java"},
			Reviews: 90, IsVerified: true, Image: imageBase + "photo-1517694712202-14dd9538aa97?q=80&w=800",
			EduRankScore: intPtr(88), ScoreBreakdown: schoolBreakdown(26, 18, 24),
		},
		{
			ID: "41", Name: "Leapfrog Academy", Slug: "leapfrog", Type: domain.TypeTrainingCenter, Tier: domain.TierPremium,
			Address: "Dillibazar, Kathmandu", City: "Kathmandu", Rating: 4.8, Fees: 25000,
			Features: []string{"Industry Experts", "Hackathons"}, Programs: []string{"AI", "Data Science", "Full Stack"},
			Reviews: 120, IsVerified: true, Image: imageBase + "photo-1553877616-15286562160e?q=80&w=800",
			EduRankScore: intPtr(96), ScoreBreakdown: schoolBreakdown(29, 19, 28),
		},
	}
}
