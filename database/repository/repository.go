package repository

import (
	bookingRepo "hostnhome/database/repository/booking"
	quotationRepo "hostnhome/database/repository/quotation"
	resortRepo "hostnhome/database/repository/resort"
	userRepo "hostnhome/database/repository/user"
)

// Re-export the QuotationRepository interface and constructors.
type QuotationRepository = quotationRepo.QuotationRepository

var (
	NewMongoQuotationRepo    = quotationRepo.NewMongoQuotationRepo
	NewPostgresQuotationRepo = quotationRepo.NewPostgresQuotationRepo
)

// Re-export the ResortRepository interface and constructors.
type ResortRepository = resortRepo.ResortRepository

var (
	NewMongoResortRepo    = resortRepo.NewMongoResortRepo
	NewPostgresResortRepo = resortRepo.NewPostgresResortRepo
)

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the UserRepository interface and constructor.
type UserRepository = userRepo.UserRepository

var NewMongoUserRepository = userRepo.NewMongoUserRepo
