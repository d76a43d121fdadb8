package constvars

const MongoCollectionReservations = "reservations"
